package term

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teadoc/teadoc/log"
	"github.com/teadoc/teadoc/toolkit"
)

// Toolkit realizes widgets as terminal renderers and runs the interface as
// a Bubble Tea program. The zero value is not usable; construct one with
// [New].
type Toolkit struct {
	theme  Theme
	logger log.Logger

	mu      sync.Mutex
	program *tea.Program
	focus   toolkit.Widget
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithTheme selects the style set widgets render with.
func WithTheme(theme Theme) Option {
	return func(tk *Toolkit) { tk.theme = theme }
}

// WithLogger routes runtime diagnostics to the given logger.
func WithLogger(logger log.Logger) Option {
	return func(tk *Toolkit) { tk.logger = logger }
}

// New constructs a terminal toolkit with the default theme.
func New(opts ...Option) *Toolkit {
	tk := &Toolkit{theme: DefaultTheme()}

	for _, opt := range opts {
		opt(tk)
	}

	return tk
}

// Construct implements [toolkit.Toolkit]. The parent is recorded at
// attachment rather than construction, so it is ignored here.
func (tk *Toolkit) Construct(
	kind toolkit.Kind,
	_ toolkit.Widget,
	args []any,
	opts toolkit.Options,
) (toolkit.Widget, error) {
	tk.logger.Debug("construct",
		slog.String("kind", kind.String()),
		slog.Int("args", len(args)),
		slog.Int("options", len(opts)),
	)

	switch kind {
	case toolkit.KindRoot:
		return newWindow(tk.theme, args, opts), nil
	case toolkit.KindFrame:
		return newFrame(tk.theme, args, opts), nil
	case toolkit.KindLabel:
		return newLabel(tk.theme, args, opts), nil
	case toolkit.KindButton:
		return newButton(tk.theme, args, opts), nil
	case toolkit.KindEntry:
		return newEntry(tk.theme, args, opts), nil
	case toolkit.KindText:
		return newText(tk.theme, args, opts), nil
	case toolkit.KindCanvas:
		return newCanvas(tk.theme, args, opts), nil
	case toolkit.KindRadio:
		return newRadio(tk.theme, args, opts), nil
	case toolkit.KindCheck:
		return newCheck(tk.theme, args, opts), nil
	case toolkit.KindCombo:
		return newCombo(tk.theme, args, opts), nil
	}

	return nil, toolkit.ErrUnsupportedKind.With(slog.String("kind", kind.String()))
}

// Run implements [toolkit.Toolkit]. It blocks until the interface quits or
// ctx is canceled.
func (tk *Toolkit) Run(ctx context.Context, root toolkit.Widget) error {
	win, ok := root.(*window)
	if !ok {
		return ErrNotWindow.With(slog.String("kind", kindName(root)))
	}

	a := newApp(ctx, win, tk.logger, tk.takeFocus())

	program := tea.NewProgram(a, tea.WithContext(ctx), tea.WithAltScreen())

	tk.setProgram(program)
	defer tk.setProgram(nil)

	tk.logger.DebugContext(ctx, "interface starting",
		slog.Int("focusable", len(a.ring)),
	)

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = context.Cause(ctx)
	}

	tk.logger.DebugContext(ctx, "interface stopped", slog.Any("error", err))

	return err
}

// Stop implements [toolkit.Stopper]. It asks a running program to quit and
// does nothing otherwise.
func (tk *Toolkit) Stop() {
	tk.mu.Lock()
	program := tk.program
	tk.mu.Unlock()

	if program != nil {
		program.Quit()
	}
}

// Focus implements [toolkit.Focuser]. While the interface runs the focus
// change is delivered as a message; beforehand it is remembered as the
// initial focus for the next [Toolkit.Run].
func (tk *Toolkit) Focus(w toolkit.Widget) error {
	if _, ok := w.(focusable); !ok {
		return ErrCannotFocus.With(slog.String("kind", kindName(w)))
	}

	tk.mu.Lock()
	program := tk.program

	if program == nil {
		tk.focus = w
	}
	tk.mu.Unlock()

	if program != nil {
		program.Send(focusMsg{target: w})
	}

	return nil
}

func (tk *Toolkit) setProgram(p *tea.Program) {
	tk.mu.Lock()
	tk.program = p
	tk.mu.Unlock()
}

// takeFocus consumes the pending initial focus target.
func (tk *Toolkit) takeFocus() toolkit.Widget {
	tk.mu.Lock()
	defer tk.mu.Unlock()

	w := tk.focus
	tk.focus = nil

	return w
}

func kindName(w toolkit.Widget) string {
	if w == nil {
		return "nil"
	}

	return w.Kind().String()
}
