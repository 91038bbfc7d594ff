package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/timeutil"
)

// WindowOptions limits output to recent entries.
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions, def string) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", def,
		`How far back to look, example: --window=1w, --window=3d12h or --window=all.`)
}

func (o *WindowOptions) GetWindow() (time.Duration, error) {
	return timeutil.ParseWindow(o.Window)
}
