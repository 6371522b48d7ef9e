package term

import (
	"context"
	"maps"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teadoc/teadoc/toolkit"
)

// renderer is implemented by every term widget.
type renderer interface {
	render() string
}

// focusable widgets participate in the focus ring and receive keystrokes
// while focused. setFocus may return a command, such as starting the cursor
// blink of a text input.
type focusable interface {
	toolkit.Widget

	setFocus(on bool) tea.Cmd
	update(ctx context.Context, msg tea.Msg) (tea.Cmd, error)
}

// base carries the state common to all term widgets: kind, theme, the
// construction arguments, and a mutable option set.
//
// Widgets are confined to the goroutine running the program loop, matching
// the single-threaded compilation model, so options are not locked.
type base struct {
	kind    toolkit.Kind
	theme   Theme
	args    []any
	opts    toolkit.Options
	focused bool
}

func makeBase(kind toolkit.Kind, theme Theme, args []any, opts toolkit.Options) base {
	return base{kind: kind, theme: theme, args: args, opts: opts.Clone()}
}

// Kind implements [toolkit.Widget].
func (b *base) Kind() toolkit.Kind { return b.kind }

// Configure implements [toolkit.Widget]. Unknown options are stored rather
// than rejected, the way a display server ignores hints it cannot honor.
func (b *base) Configure(opts toolkit.Options) error {
	maps.Copy(b.opts, opts)

	return nil
}

// Option implements [toolkit.Widget].
func (b *base) Option(name string) (any, bool) {
	v, ok := b.opts[name]

	return v, ok
}

// Options implements [toolkit.OptionLister].
func (b *base) Options() toolkit.Options { return b.opts.Clone() }

func (b *base) setFocus(on bool) tea.Cmd {
	b.focused = on

	return nil
}

// optString returns a string option or fallback when absent or untyped.
func (b *base) optString(name, fallback string) string {
	if s, ok := b.opts.GetString(name); ok {
		return s
	}

	return fallback
}

// optInt returns an integer option or fallback when absent or untyped.
func (b *base) optInt(name string, fallback int) int {
	if n, ok := b.opts.GetInt(name); ok {
		return n
	}

	return fallback
}

// styled overlays the widget's own foreground and background options, when
// present, onto a theme style.
func (b *base) styled(st lipgloss.Style) lipgloss.Style {
	if s, ok := b.opts.GetString("foreground"); ok && s != "" {
		st = st.Foreground(lipgloss.Color(s))
	}

	if s, ok := b.opts.GetString("background"); ok && s != "" {
		st = st.Background(lipgloss.Color(s))
	}

	return st
}

// command returns the widget's bound activation callback, when one is set.
func (b *base) command() (toolkit.Func, bool) {
	fn, ok := b.opts["command"].(toolkit.Func)

	return fn, ok
}

// runCommand invokes the bound callback, when one is set.
func (b *base) runCommand(ctx context.Context) error {
	fn, ok := b.command()
	if !ok {
		return nil
	}

	_, err := fn(ctx, nil, nil)

	return err
}

// renderWidget renders any widget this package knows how to draw. Foreign
// widgets, such as test doubles, render as nothing.
func renderWidget(w toolkit.Widget) string {
	if r, ok := w.(renderer); ok {
		return r.render()
	}

	return ""
}
