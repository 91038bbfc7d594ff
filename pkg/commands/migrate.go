package commands

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/migrate"
	"tableflip.dev/mood/pkg/store"
)

func addMigrate(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var toPath, toBackend string

	cmd := &cobra.Command{
		Use:   "migrate --to-backend <backend>",
		Short: "Copy the journal into another store, keeping what is already there.",
		Example: `
mood migrate --to-backend sqlite
mood --backend sqlite migrate --to-backend diskv --to-path ~/backup
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			from, err := so.Config()
			if err != nil {
				return oo.HandleError(err)
			}
			if toBackend == "" && toPath == "" {
				return oo.HandleError(fmt.Errorf("nothing to migrate to, set --to-backend or --to-path"))
			}
			path, backend := from.BasePath(), from.Backend()
			if toPath != "" {
				if path, err = homedir.Expand(toPath); err != nil {
					return oo.HandleError(err)
				}
			}
			if toBackend != "" {
				backend = toBackend
			}

			m := migrate.Migrate{
				From: from,
				To:   store.NewConfig(path, backend),
				JSON: oo.JSON,
			}
			err = m.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&toBackend, "to-backend", "", "Target backend.")
	cmd.Flags().StringVar(&toPath, "to-path", "", "Target directory, defaults to the current one.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
