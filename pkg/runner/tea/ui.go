package teaui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/mood/pkg/booster"
	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/runner/tea/internal/help"
	"tableflip.dev/mood/pkg/runner/tea/internal/historyview"
	"tableflip.dev/mood/pkg/runner/tea/internal/theme"
	"tableflip.dev/mood/pkg/session"
)

const (
	defaultWidth  = 80
	defaultHeight = 40
	eventBuffer   = 64
)

type mode int

const (
	modeNormal mode = iota
	modeConfirmClear
	modeHelp
)

// controllerEventMsg carries a session event into the Bubble Tea loop.
type controllerEventMsg struct {
	event session.Event
}

// Model is the Bubble Tea model of the mood picker, history and booster.
type Model struct {
	ctx   context.Context
	ctl   *session.Controller
	theme theme.Theme

	events      chan session.Event
	unsubscribe func()

	mode      mode
	selection session.Selection
	booster   *booster.Booster
	history   *historyview.Model
	help      *help.Model

	status     string
	statusWarn bool

	width  int
	height int
}

// New wires a model to the controller. Call Close when done.
func New(ctx context.Context, ctl *session.Controller) *Model {
	th := theme.Default()
	m := &Model{
		ctx:     ctx,
		ctl:     ctl,
		theme:   th,
		events:  make(chan session.Event, eventBuffer),
		booster: booster.New(),
		history: historyview.New(th, defaultWidth, historyHeight(defaultWidth, defaultHeight)),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.unsubscribe = ctl.Subscribe(func(ev session.Event) {
		// Every event re-reads the controller, so a dropped one is
		// covered by the next.
		select {
		case m.events <- ev:
		default:
		}
	})
	m.sync()
	return m
}

// Close detaches the model from the controller.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Warn shows err in the status line.
func (m *Model) Warn(err error) {
	if err == nil {
		return
	}
	m.setStatus(err.Error(), true)
}

func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(ch <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return controllerEventMsg{event: ev}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case controllerEventMsg:
		m.sync()
		if msg.event.Type == session.EventWarning && msg.event.Err != nil {
			m.Warn(msg.event.Err)
		}
		return m, waitForEvent(m.events)

	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			return m.updateHelp(msg)
		case modeConfirmClear:
			return m.updateConfirm(msg)
		default:
			return m.updateNormal(msg)
		}

	case tea.MouseWheelMsg:
		if m.mode == modeHelp && m.help != nil {
			return m, m.help.Update(msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		m.Close()
		return m, tea.Quit
	case "?":
		m.openHelp()
	case "s", "ctrl+s":
		m.submit()
	case "down", "j":
		m.history.Move(1)
	case "up", "k":
		m.history.Move(-1)
	case "d", "delete":
		m.deleteSelected()
	case "C":
		if m.history.Len() == 0 {
			m.setStatus("Nothing to clear.", false)
			break
		}
		m.mode = modeConfirmClear
	case "tab":
		if m.selection.Mood == catalog.Sad {
			m.booster.ToggleTab()
		}
	case "n":
		if m.selection.Mood == catalog.Sad {
			m.booster.Next()
		}
	default:
		if mood, ok := catalog.MoodForKey(key); ok {
			m.ctl.SelectMood(mood.ID)
			m.clearStatus()
			break
		}
		if mood, ok := boosterShortcut(key); ok && m.selection.Mood == catalog.Sad {
			m.ctl.SelectMood(mood.ID)
			m.clearStatus()
			break
		}
		if act, ok := catalog.ActivityForKey(key); ok {
			m.ctl.ToggleActivity(act.ID)
		}
	}
	m.sync()
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "y", "Y":
		m.mode = modeNormal
		n := m.history.Len()
		cleared, err := m.ctl.ClearAll(m.ctx, func(string) (bool, error) { return true, nil })
		switch {
		case err != nil:
			m.Warn(err)
		case cleared:
			m.setStatus(fmt.Sprintf("Cleared %d mood entries.", n), false)
		}
	case "n", "N", "esc":
		m.mode = modeNormal
		m.setStatus("Nothing cleared.", false)
	}
	m.sync()
	return m, nil
}

func (m *Model) updateHelp(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "?", "esc", "q":
		m.mode = modeNormal
		return m, nil
	}
	return m, m.help.Update(msg)
}

func (m *Model) openHelp() {
	if m.help == nil {
		m.help = help.New(m.width, m.height)
	} else {
		m.help.SetSize(m.width, m.height)
	}
	m.mode = modeHelp
}

func (m *Model) submit() {
	_, err := m.ctl.SubmitEntry(m.ctx)
	switch {
	case errors.Is(err, session.ErrNoMood):
		m.setStatus("Please select a mood first!", true)
	case err != nil:
		m.Warn(err)
	default:
		m.clearStatus()
	}
}

func (m *Model) deleteSelected() {
	e := m.history.Selected()
	if e == nil {
		return
	}
	deleted, err := m.ctl.DeleteEntry(m.ctx, e.ID)
	switch {
	case err != nil:
		m.Warn(err)
	case deleted:
		m.setStatus("Deleted "+describe(e)+".", false)
	}
}

// sync pulls the controller state into the views.
func (m *Model) sync() {
	m.selection = m.ctl.Selection()
	m.history.SetEntries(m.ctl.Entries())
}

func (m *Model) setSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
	m.history.SetSize(historyWidth(width), historyHeight(width, height))
	if m.help != nil {
		m.help.SetSize(width, height)
	}
}

func (m *Model) setStatus(s string, warn bool) {
	m.status = s
	m.statusWarn = warn
}

func (m *Model) clearStatus() {
	m.setStatus("", false)
}

// boosterShortcut maps the upper-case initial of a booster mood to it.
func boosterShortcut(key string) (catalog.Mood, bool) {
	for _, mood := range catalog.BoosterShortcuts() {
		if key == shortcutKey(mood) {
			return mood, true
		}
	}
	return catalog.Mood{}, false
}

func shortcutKey(mood catalog.Mood) string {
	if mood.Label == "" {
		return ""
	}
	return mood.Label[:1]
}

func describe(e *entry.Entry) string {
	label := catalog.MoodLabel(e.Mood)
	if label == "" {
		label = e.Mood
	}
	return fmt.Sprintf("%s entry from %s %s", label, e.Date, e.Timestamp)
}
