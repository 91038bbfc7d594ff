package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/mood/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive mood picker.",
		Example: `
mood ui
mood ui --backend sqlite
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := contextOf(cmd)
			svc, err := openJournal(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()
			return teaui.Run(ctx, svc)
		},
	}

	topLevel.AddCommand(cmd)
}
