package modules

import (
	"context"
	"log/slog"
	"os"

	"github.com/teadoc/teadoc/lang"
	"github.com/teadoc/teadoc/toolkit"
)

// App returns the app module: process and interface control functions
// that documents bind to buttons and other callbacks.
func App() lang.Module {
	return lang.NewModule("app", map[string]toolkit.Func{
		"quit":  appQuit,
		"focus": appFocus,
		"get":   appGet,
		"set":   appSet,
		"bell":  appBell,
	})
}

// appQuit stops the running interface.
func appQuit(_ context.Context, args []any, _ toolkit.Options) (any, error) {
	gui, _ := boundGUI(args)
	if gui == nil {
		return nil, ErrNoInterface.With(slog.String("function", "quit"))
	}

	gui.Stop()

	return nil, nil
}

// appFocus moves input focus to the named element.
func appFocus(_ context.Context, args []any, _ toolkit.Options) (any, error) {
	gui, rest := boundGUI(args)
	if gui == nil {
		return nil, ErrNoInterface.With(slog.String("function", "focus"))
	}

	name, ok := stringArg(rest, 0)
	if !ok {
		return nil, ErrBadArgument.With(slog.String("function", "focus"))
	}

	target, ok := gui.Lookup(name)
	if !ok {
		return nil, ErrUnknownName.With(slog.String("name", name))
	}

	widget, ok := target.(toolkit.Widget)
	if !ok {
		return nil, ErrBadArgument.With(slog.String("name", name))
	}

	f, ok := gui.Toolkit().(toolkit.Focuser)
	if !ok {
		return nil, ErrUnsupported.With(slog.String("function", "focus"))
	}

	return nil, f.Focus(widget)
}

// appGet reads the named variable's value, or the named widget's text.
func appGet(_ context.Context, args []any, _ toolkit.Options) (any, error) {
	gui, rest := boundGUI(args)
	if gui == nil {
		return nil, ErrNoInterface.With(slog.String("function", "get"))
	}

	name, ok := stringArg(rest, 0)
	if !ok {
		return nil, ErrBadArgument.With(slog.String("function", "get"))
	}

	return guiValue(gui, name)
}

// appSet writes the named variable's value, or the named widget's text,
// and returns the value written.
func appSet(_ context.Context, args []any, _ toolkit.Options) (any, error) {
	gui, rest := boundGUI(args)
	if gui == nil {
		return nil, ErrNoInterface.With(slog.String("function", "set"))
	}

	name, ok := stringArg(rest, 0)
	if !ok || len(rest) < 2 {
		return nil, ErrBadArgument.With(slog.String("function", "set"))
	}

	return rest[1], setGUIValue(gui, name, rest[1])
}

// appBell rings the terminal bell.
func appBell(context.Context, []any, toolkit.Options) (any, error) {
	_, err := os.Stdout.WriteString("\a")

	return nil, err
}

func guiValue(gui *lang.GUI, name string) (any, error) {
	target, ok := gui.Lookup(name)
	if !ok {
		return nil, ErrUnknownName.With(slog.String("name", name))
	}

	switch t := target.(type) {
	case toolkit.Variable:
		return t.Value(), nil
	case toolkit.Widget:
		v, _ := t.Option("text")

		return v, nil
	}

	return nil, ErrBadArgument.With(slog.String("name", name))
}

func setGUIValue(gui *lang.GUI, name string, value any) error {
	target, ok := gui.Lookup(name)
	if !ok {
		return ErrUnknownName.With(slog.String("name", name))
	}

	switch t := target.(type) {
	case toolkit.Variable:
		return t.Set(value)
	case toolkit.Widget:
		return t.Configure(toolkit.Options{"text": value})
	}

	return ErrBadArgument.With(slog.String("name", name))
}
