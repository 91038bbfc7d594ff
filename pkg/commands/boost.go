package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/boost"
)

func addBoost(topLevel *cobra.Command) {
	bo := &options.BoosterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "boost",
		Short: "Feeling down? Print a joke or an inspirational quote.",
		Example: `
mood boost
mood boost --quotes
mood boost -n 3
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			b := boost.Boost{
				Quotes: bo.Quotes,
				Number: bo.Number,
				JSON:   oo.JSON,
			}
			err := b.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddBoosterArgs(cmd, bo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
