package term

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teadoc/teadoc/toolkit"
)

// Selection markers.
const (
	radioOn  = "(•)"
	radioOff = "( )"
	checkOn  = "[x]"
	checkOff = "[ ]"
)

// choice carries the state shared by radio and check widgets: a shared
// integer variable and a text caption.
type choice struct {
	base

	v *toolkit.IntVar
}

func makeChoice(kind toolkit.Kind, theme Theme, args []any, opts toolkit.Options) choice {
	c := choice{base: makeBase(kind, theme, args, opts)}

	if v, ok := c.opts["variable"]; ok {
		c.v, _ = v.(*toolkit.IntVar)
	}

	if c.v == nil {
		c.v = toolkit.NewIntVar()
	}

	return c
}

func (c *choice) caption(marker string) string {
	style := c.theme.Text
	if c.focused {
		style = c.theme.Focus
	}

	text := c.optString("text", "")
	if text == "" {
		return c.styled(style).Render(marker)
	}

	return c.styled(style).Render(marker + " " + text)
}

// radio selects one value out of a group sharing a variable. Activating it
// stores its value option, zero when unset, into the shared variable.
type radio struct {
	choice

	value int64
}

func newRadio(theme Theme, args []any, opts toolkit.Options) *radio {
	r := &radio{choice: makeChoice(toolkit.KindRadio, theme, args, opts)}
	r.value = int64(r.optInt("value", 0))

	return r
}

func (r *radio) render() string {
	marker := radioOff
	if r.v.Get() == r.value {
		marker = radioOn
	}

	return r.caption(marker)
}

func (r *radio) update(ctx context.Context, msg tea.Msg) (tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "enter", " ":
		r.v.SetInt(r.value)

		return nil, r.runCommand(ctx)
	}

	return nil, nil
}

// check toggles its shared variable between an on value and an off value,
// 1 and 0 unless configured otherwise.
type check struct {
	choice

	on, off int64
}

func newCheck(theme Theme, args []any, opts toolkit.Options) *check {
	c := &check{choice: makeChoice(toolkit.KindCheck, theme, args, opts)}
	c.on = int64(c.optInt("onvalue", 1))
	c.off = int64(c.optInt("offvalue", 0))

	return c
}

func (c *check) render() string {
	marker := checkOff
	if c.v.Get() == c.on {
		marker = checkOn
	}

	return c.caption(marker)
}

func (c *check) update(ctx context.Context, msg tea.Msg) (tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "enter", " ":
		if c.v.Get() == c.on {
			c.v.SetInt(c.off)
		} else {
			c.v.SetInt(c.on)
		}

		return nil, c.runCommand(ctx)
	}

	return nil, nil
}

// combo cycles through a fixed list of values, mirroring the selection into
// a shared string variable. It is read-only: values come from the values
// option, never from typing.
type combo struct {
	base

	tv     *toolkit.StringVar
	values []string
}

func newCombo(theme Theme, args []any, opts toolkit.Options) *combo {
	c := &combo{base: makeBase(toolkit.KindCombo, theme, args, opts)}

	if v, ok := c.opts["textvariable"]; ok {
		c.tv, _ = v.(*toolkit.StringVar)
	}

	if c.tv == nil {
		c.tv = toolkit.NewStringVar()
	}

	if list, ok := c.opts["values"].([]any); ok {
		c.values = make([]string, len(list))
		for i, v := range list {
			c.values[i] = fmt.Sprint(v)
		}
	}

	return c
}

func (c *combo) render() string {
	style := c.theme.Text
	if c.focused {
		style = c.theme.Focus
	}

	arrows := c.theme.Accent

	return arrows.Render("‹ ") +
		c.styled(style).Render(c.tv.Get()) +
		arrows.Render(" ›")
}

// Option reports the current selection for text.
func (c *combo) Option(name string) (any, bool) {
	if name == "text" {
		return c.tv.Get(), true
	}

	return c.base.Option(name)
}

func (c *combo) update(_ context.Context, msg tea.Msg) (tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "enter", " ", "right", "down":
		c.cycle(1)
	case "left", "up":
		c.cycle(-1)
	}

	return nil, nil
}

// cycle advances the selection by delta, wrapping at either end. An unset
// selection lands on the first or last value.
func (c *combo) cycle(delta int) {
	if len(c.values) == 0 {
		return
	}

	current := -1

	for i, v := range c.values {
		if v == c.tv.Get() {
			current = i

			break
		}
	}

	next := current + delta

	switch {
	case next < 0:
		next = len(c.values) - 1
	case next >= len(c.values):
		next = 0
	}

	c.tv.SetString(c.values[next])
}
