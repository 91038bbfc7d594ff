// Package teaui is the interactive terminal UI of the mood tracker.
package teaui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/mood/pkg/app"
)

// Run launches the Bubble Tea UI on the service's controller. Changes made
// to the store by other processes are picked up when the backend can watch.
func Run(ctx context.Context, svc *app.Service) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := svc.Watch(ctx); err != nil && !errors.Is(err, app.ErrWatchUnsupported) {
		return err
	}

	m := New(ctx, svc.Controller)
	defer m.Close()
	m.Warn(svc.Warning)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
