package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
)

var (
	so = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mood",
		Short: base.Wrap80("Track how you feel, and what you were doing, from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddStoreArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addHistory(topLevel)
	addDelete(topLevel)
	addClear(topLevel)
	addCatalog(topLevel)
	addBoost(topLevel)
	addStats(topLevel)
	addInfo(topLevel)
	addMigrate(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openJournal opens the configured journal and reports a restore warning
// on stderr.
func openJournal(ctx context.Context) (*app.Service, error) {
	cfg, err := so.Config()
	if err != nil {
		return nil, err
	}
	svc, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc.Warn()
	return svc, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
