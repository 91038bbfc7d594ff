package options

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/repository"
	"tableflip.dev/mood/pkg/session"
	"tableflip.dev/mood/pkg/store"
)

// OutputOptions
type OutputOptions struct {
	JSON bool

	// Out receives JSON errors; color.Output when nil.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

type errorJSON struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ErrorKind names the class of err for scripts: validation, read, write,
// or empty when unclassified.
func ErrorKind(err error) string {
	var (
		ve *session.ValidationError
		re *repository.ReadError
		we *store.WriteError
	)
	switch {
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &re):
		return "read"
	case errors.As(err, &we):
		return "write"
	default:
		return ""
	}
}

// HandleError prints err as {"error": "...", "kind": "..."} in JSON mode
// and swallows it, otherwise returns it unchanged for cobra to report.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	return printers.JSONLine(o.Out, errorJSON{Error: err.Error(), Kind: ErrorKind(err)})
}
