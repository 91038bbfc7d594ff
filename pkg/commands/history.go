package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	ho := &options.HistoryOptions{}
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"get", "ls"},
		Short:   "List logged moods, newest first.",
		Example: `
mood history
mood history --window 1w --show-id
mood history --calendar
mood history --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, err := wo.GetWindow()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := openJournal(contextOf(cmd))
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			h := history.History{
				Window:     window,
				ShowID:     ho.ShowID,
				JSON:       oo.JSON,
				Calendar:   ho.Calendar,
				Controller: svc.Controller,
			}
			err = h.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddHistoryArgs(cmd, ho)
	options.AddWindowArgs(cmd, wo, "all")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
