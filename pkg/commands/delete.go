package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one logged mood by id.",
		Long:    "Delete one logged mood by id. Ids are shown by `mood history --show-id`.",
		Example: `
mood delete 1709647620000
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return entryCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := openJournal(contextOf(cmd))
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			d := remove.Delete{
				ID:         args[0],
				Quiet:      oo.JSON,
				Out:        cmd.OutOrStdout(),
				Controller: svc.Controller,
			}
			err = d.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// entryCompletions offers entry ids described by their mood and time.
func entryCompletions() []string {
	svc, err := openJournal(context.Background())
	if err != nil {
		return nil
	}
	defer svc.Close()

	entries := svc.Controller.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID+"\t"+e.String())
	}
	return out
}
