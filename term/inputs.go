package term

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teadoc/teadoc/toolkit"
)

const (
	defaultEntryWidth = 24
	entryCharLimit    = 256

	defaultTextWidth  = 40
	defaultTextHeight = 5
)

// entry is a single-line text input. When constructed with a textvariable
// option holding a [toolkit.StringVar], edits push into the variable and
// variable writes push back into the input.
type entry struct {
	base

	input   textinput.Model
	tv      *toolkit.StringVar
	syncing bool
}

func newEntry(theme Theme, args []any, opts toolkit.Options) *entry {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = entryCharLimit
	ti.TextStyle = theme.Text
	ti.PlaceholderStyle = theme.Muted

	e := &entry{base: makeBase(toolkit.KindEntry, theme, args, opts), input: ti}

	e.input.Width = e.optInt("width", defaultEntryWidth)
	e.input.Placeholder = e.optString("placeholder", "")

	if mask := e.optString("show", ""); mask != "" {
		e.input.EchoMode = textinput.EchoPassword
		e.input.EchoCharacter = []rune(mask)[0]
	}

	if s := e.optString("text", ""); s != "" {
		e.input.SetValue(s)
	}

	if v, ok := e.opts["textvariable"]; ok {
		e.tv, _ = v.(*toolkit.StringVar)
	}

	if e.tv != nil {
		if s := e.tv.Get(); s != "" {
			e.input.SetValue(s)
		} else if s := e.input.Value(); s != "" {
			e.tv.SetString(s)
		}

		e.tv.Watch(func(s string) {
			if !e.syncing && s != e.input.Value() {
				e.input.SetValue(s)
			}
		})
	}

	return e
}

func (e *entry) render() string { return e.input.View() }

// Option reports the live input value for text.
func (e *entry) Option(name string) (any, bool) {
	if name == "text" {
		return e.input.Value(), true
	}

	return e.base.Option(name)
}

// Configure applies options, routing text into the input.
func (e *entry) Configure(opts toolkit.Options) error {
	if err := e.base.Configure(opts); err != nil {
		return err
	}

	if s, ok := opts.GetString("text"); ok {
		e.setText(s)
	}

	return nil
}

func (e *entry) setText(s string) {
	e.input.SetValue(s)
	e.push()
}

// push mirrors the input value into the shared variable.
func (e *entry) push() {
	if e.tv == nil || e.tv.Get() == e.input.Value() {
		return
	}

	e.syncing = true
	e.tv.SetString(e.input.Value())
	e.syncing = false
}

func (e *entry) setFocus(on bool) tea.Cmd {
	e.base.setFocus(on)

	if !on {
		e.input.Blur()
		e.input.TextStyle = e.theme.Text

		return nil
	}

	e.input.TextStyle = e.theme.Focus

	return e.input.Focus()
}

func (e *entry) update(_ context.Context, msg tea.Msg) (tea.Cmd, error) {
	var cmd tea.Cmd

	e.input, cmd = e.input.Update(msg)
	e.push()

	return cmd, nil
}

// text is a multi-line input built on a textarea.
type text struct {
	base

	area textarea.Model
}

func newText(theme Theme, args []any, opts toolkit.Options) *text {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	t := &text{base: makeBase(toolkit.KindText, theme, args, opts), area: ta}

	t.area.SetWidth(t.optInt("width", defaultTextWidth))
	t.area.SetHeight(t.optInt("height", defaultTextHeight))
	t.area.Placeholder = t.optString("placeholder", "")

	if s := t.optString("text", ""); s != "" {
		t.area.SetValue(s)
	}

	return t
}

func (t *text) render() string { return t.area.View() }

// Option reports the live area value for text.
func (t *text) Option(name string) (any, bool) {
	if name == "text" {
		return t.area.Value(), true
	}

	return t.base.Option(name)
}

// Configure applies options, routing text into the area.
func (t *text) Configure(opts toolkit.Options) error {
	if err := t.base.Configure(opts); err != nil {
		return err
	}

	if s, ok := opts.GetString("text"); ok {
		t.area.SetValue(s)
	}

	return nil
}

func (t *text) setFocus(on bool) tea.Cmd {
	t.base.setFocus(on)

	if !on {
		t.area.Blur()

		return nil
	}

	return t.area.Focus()
}

func (t *text) update(_ context.Context, msg tea.Msg) (tea.Cmd, error) {
	var cmd tea.Cmd

	t.area, cmd = t.area.Update(msg)

	return cmd, nil
}
