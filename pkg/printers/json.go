package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// JSON writes v indented to w, or to color.Output when w is nil.
func JSON(w io.Writer, v any) error {
	if w == nil {
		w = color.Output
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// JSONLine writes v compact on a single line.
func JSONLine(w io.Writer, v any) error {
	if w == nil {
		w = color.Output
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
