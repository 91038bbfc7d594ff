package options

import (
	"github.com/spf13/cobra"
)

// HistoryOptions controls how the mood history is laid out.
type HistoryOptions struct {
	ShowID   bool
	Calendar bool
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry, as used by `mood delete`.")
	cmd.Flags().BoolVarP(&o.Calendar, "calendar", "c", false,
		"Show this month as a calendar coloured by the last mood of each day.")
}
