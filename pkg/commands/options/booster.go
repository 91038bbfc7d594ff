package options

import (
	"github.com/spf13/cobra"
)

// BoosterOptions
type BoosterOptions struct {
	Quotes bool
	Number int
}

func AddBoosterArgs(cmd *cobra.Command, o *BoosterOptions) {
	cmd.Flags().BoolVarP(&o.Quotes, "quotes", "q", false,
		"Show an inspirational quote instead of a joke.")
	cmd.Flags().IntVarP(&o.Number, "number", "n", 0,
		"Which item to show, starting at 1. Defaults to the item of the day.")
}
