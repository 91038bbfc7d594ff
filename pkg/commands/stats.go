package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the moods and activities of a recent window.",
		Example: `
mood stats
mood stats --window 30d --json
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

			s := stats.Stats{
				Window:     window,
				JSON:       oo.JSON,
				Controller: svc.Controller,
			}
			err = s.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo, "1w")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
