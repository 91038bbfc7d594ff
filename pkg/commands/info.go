package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
mood info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openJournal(contextOf(cmd))
			if err != nil {
				return err
			}
			defer svc.Close()

			s := info.Info{
				Config:     svc.Config,
				Store:      svc.Store,
				Repository: svc.Repository,
			}
			return s.Do(contextOf(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
