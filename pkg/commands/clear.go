package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/clearall"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every logged mood.",
		Long: `Delete every logged mood. You will be asked to confirm unless --yes is
given; without a terminal to ask on, --yes is required.`,
		Example: `
mood clear
mood clear --yes
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openJournal(contextOf(cmd))
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			c := clearall.Clear{
				Yes:        co.Yes,
				Controller: svc.Controller,
			}
			err = c.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
