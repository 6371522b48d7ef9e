package term

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teadoc/teadoc/log"
	"github.com/teadoc/teadoc/toolkit"
)

// focusMsg moves input focus to a specific widget.
type focusMsg struct {
	target toolkit.Widget
}

// app is the Bubble Tea model driving a compiled interface. It owns the
// focus ring and routes every message to the focused widget; widget
// callbacks run inside the update loop and their errors are logged rather
// than fatal.
type app struct {
	ctxFunc func() context.Context
	root    *window
	logger  log.Logger

	ring  []focusable
	focus int

	width    int
	height   int
	quitting bool
}

func newApp(
	ctx context.Context,
	root *window,
	logger log.Logger,
	focus toolkit.Widget,
) app {
	a := app{
		ctxFunc: func() context.Context { return ctx },
		root:    root,
		logger:  logger,
		ring:    collectFocusable(root),
		focus:   -1,
	}

	if len(a.ring) == 0 {
		return a
	}

	a.focus = 0

	for i, f := range a.ring {
		if toolkit.Widget(f) == focus {
			a.focus = i

			break
		}
	}

	a.ring[a.focus].setFocus(true)

	return a
}

// collectFocusable walks the widget tree depth-first and returns every
// focusable widget in document order.
func collectFocusable(root toolkit.Widget) []focusable {
	var ring []focusable

	var walk func(w toolkit.Widget)
	walk = func(w toolkit.Widget) {
		if f, ok := w.(focusable); ok {
			ring = append(ring, f)
		}

		if c, ok := w.(toolkit.ChildLister); ok {
			for _, child := range c.Children() {
				walk(child)
			}
		}
	}

	walk(root)

	return ring
}

func (a app) Init() tea.Cmd {
	return textinput.Blink
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a, nil

	case focusMsg:
		return a.focusOn(msg.target)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.quitting = true

			return a, tea.Quit

		case "tab":
			return a.moveFocus(1)

		case "shift+tab":
			return a.moveFocus(-1)
		}
	}

	return a.route(msg)
}

func (a app) View() string {
	if a.quitting {
		return ""
	}

	body := a.root.render()
	if a.width == 0 {
		return body
	}

	return lipgloss.Place(
		a.width, a.height,
		lipgloss.Center, lipgloss.Center,
		body,
	)
}

// focused returns the widget holding input focus, or nil.
func (a app) focused() focusable {
	if a.focus < 0 || a.focus >= len(a.ring) {
		return nil
	}

	return a.ring[a.focus]
}

// moveFocus shifts focus delta positions around the ring.
func (a app) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if len(a.ring) == 0 {
		return a, nil
	}

	a.ring[a.focus].setFocus(false)

	a.focus += delta
	if a.focus < 0 {
		a.focus = len(a.ring) - 1
	} else if a.focus >= len(a.ring) {
		a.focus = 0
	}

	return a, a.ring[a.focus].setFocus(true)
}

// focusOn moves focus to the requested widget, when it is in the ring.
func (a app) focusOn(target toolkit.Widget) (tea.Model, tea.Cmd) {
	for i, f := range a.ring {
		if toolkit.Widget(f) != target {
			continue
		}

		if i == a.focus {
			return a, nil
		}

		if cur := a.focused(); cur != nil {
			cur.setFocus(false)
		}

		a.focus = i

		return a, f.setFocus(true)
	}

	return a, nil
}

// route delivers a message to the focused widget. Callback errors are
// reported through the logger and the interface keeps running.
func (a app) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := a.focused()
	if f == nil {
		return a, nil
	}

	cmd, err := f.update(a.ctxFunc(), msg)
	if err != nil {
		a.logger.Error("widget callback failed",
			slog.String("widget", f.Kind().String()),
			slog.Any("error", err),
		)
	}

	return a, cmd
}
