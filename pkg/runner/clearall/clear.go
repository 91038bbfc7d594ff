// Package clearall wipes the whole mood journal after confirmation.
package clearall

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"tableflip.dev/mood/pkg/session"
)

// ErrNotInteractive is returned when confirmation is needed but nobody can
// answer it.
var ErrNotInteractive = errors.New("refusing to clear without a terminal to confirm on, pass --yes")

type Clear struct {
	Yes bool
	Out io.Writer

	// Confirm overrides the terminal prompt.
	Confirm session.ConfirmFunc

	Controller *session.Controller
}

// Interactive reports whether stdin and stdout are both terminals.
func Interactive() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// Prompt asks question on the terminal. Anything but y/yes is a no.
func Prompt(question string) (bool, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} ",
		Valid:   "{{ . | yellow }} ",
		Invalid: "{{ . | red }} ",
		Success: "{{ . | bold }} ",
	}
	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
		Templates: templates,
	}
	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, err
	}
}

func (n *Clear) confirm() (session.ConfirmFunc, error) {
	switch {
	case n.Yes:
		return func(string) (bool, error) { return true, nil }, nil
	case n.Confirm != nil:
		return n.Confirm, nil
	case Interactive():
		return Prompt, nil
	default:
		return nil, ErrNotInteractive
	}
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Controller == nil {
		return errors.New("can not clear, no journal")
	}
	confirm, err := n.confirm()
	if err != nil {
		return err
	}

	count := n.Controller.Len()
	ok, err := n.Controller.ClearAll(ctx, confirm)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if !ok {
		_, _ = color.New(color.Faint).Fprintln(out, "Nothing cleared.")
		return nil
	}
	_, _ = fmt.Fprintf(out, "Cleared %d mood entries.\n", count)
	return nil
}
