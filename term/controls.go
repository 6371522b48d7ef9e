package term

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teadoc/teadoc/toolkit"
)

// label is a line of static text.
type label struct {
	base
}

func newLabel(theme Theme, args []any, opts toolkit.Options) *label {
	return &label{base: makeBase(toolkit.KindLabel, theme, args, opts)}
}

func (l *label) render() string {
	return l.styled(l.theme.Text).Render(l.optString("text", ""))
}

// button activates its bound command on Enter or Space.
type button struct {
	base
}

func newButton(theme Theme, args []any, opts toolkit.Options) *button {
	return &button{base: makeBase(toolkit.KindButton, theme, args, opts)}
}

func (b *button) render() string {
	style := b.theme.Button
	if b.focused {
		// Inherit fills only unset properties, so focus bold and color win.
		style = b.theme.Focus.Inherit(b.theme.Button)
	}

	return b.styled(style).Render("[ " + b.optString("text", "") + " ]")
}

func (b *button) update(ctx context.Context, msg tea.Msg) (tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "enter", " ":
		return nil, b.runCommand(ctx)
	}

	return nil, nil
}

// canvas is a fixed-size block of color. Width and height are measured in
// terminal cells.
type canvas struct {
	base
}

const (
	defaultCanvasWidth  = 16
	defaultCanvasHeight = 4
)

func newCanvas(theme Theme, args []any, opts toolkit.Options) *canvas {
	return &canvas{base: makeBase(toolkit.KindCanvas, theme, args, opts)}
}

func (c *canvas) render() string {
	style := c.styled(c.theme.Canvas).
		Width(c.optInt("width", defaultCanvasWidth)).
		Height(c.optInt("height", defaultCanvasHeight))

	return style.Render(c.optString("text", ""))
}
