package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/store"
)

// StoreOptions override the configured store location.
type StoreOptions struct {
	Path    string
	Backend string
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory holding the journal. Overrides the path config key.")
	cmd.PersistentFlags().StringVar(&o.Backend, "backend", "",
		"Storage backend, one of: "+strings.Join(store.Backends(), ", ")+". Overrides the backend config key.")
	_ = cmd.RegisterFlagCompletionFunc("backend", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return store.Backends(), cobra.ShellCompDirectiveNoFileComp
	})
}

// Config loads the configuration and applies the flag overrides.
func (o *StoreOptions) Config() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.Path == "" && o.Backend == "" {
		return cfg, nil
	}
	path, backend := cfg.BasePath(), cfg.Backend()
	if o.Path != "" {
		path = o.Path
	}
	if o.Backend != "" {
		backend = o.Backend
	}
	return store.NewConfig(path, backend), nil
}
