package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions asks for missing input on the terminal.
type InteractiveOptions struct {
	Interactive bool
}

func AddInteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Prompt for the activities too, even when the mood is given.")
}
