package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"key"},
		Short:   "Print the moods and activities you can log.",
		Example: `
mood catalog
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := catalog.Catalog{JSON: oo.JSON}
			err := k.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
