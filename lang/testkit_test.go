package lang

import (
	"context"

	"github.com/teadoc/teadoc/toolkit"
)

// fakeToolkit constructs inert widgets and records construction order so
// tests can assert on the shape of the resulting tree.
type fakeToolkit struct {
	constructed []*fakeWidget

	failKind toolkit.Kind
	failErr  error

	running bool
	stopped bool
}

func newFakeToolkit() *fakeToolkit {
	return &fakeToolkit{failKind: toolkit.Kind(-1)}
}

func (tk *fakeToolkit) Construct(
	kind toolkit.Kind,
	parent toolkit.Widget,
	args []any,
	opts toolkit.Options,
) (toolkit.Widget, error) {
	if kind == tk.failKind {
		return nil, tk.failErr
	}

	w := &fakeWidget{kind: kind, args: args, opts: opts.Clone()}
	if parent != nil {
		w.parent = parent.(*fakeWidget)
	}

	tk.constructed = append(tk.constructed, w)

	return w, nil
}

func (tk *fakeToolkit) Run(context.Context, toolkit.Widget) error {
	tk.running = true

	return nil
}

func (tk *fakeToolkit) Stop() { tk.stopped = true }

// root returns the first constructed widget.
func (tk *fakeToolkit) root() *fakeWidget {
	if len(tk.constructed) == 0 {
		return nil
	}

	return tk.constructed[0]
}

// fakeWidget records construction inputs, layout calls, and configuration.
type fakeWidget struct {
	kind   toolkit.Kind
	parent *fakeWidget
	args   []any
	opts   toolkit.Options

	packed  []toolkit.Widget
	gridded []toolkit.Widget
	placed  []toolkit.Widget

	attachOpts toolkit.Options
	rows       []int
	columns    []int

	configured []toolkit.Options
}

func (w *fakeWidget) Kind() toolkit.Kind { return w.kind }

func (w *fakeWidget) Configure(opts toolkit.Options) error {
	w.configured = append(w.configured, opts.Clone())

	for k, v := range opts {
		w.opts[k] = v
	}

	return nil
}

func (w *fakeWidget) Option(name string) (any, bool) {
	v, ok := w.opts[name]

	return v, ok
}

func (w *fakeWidget) PackChild(child toolkit.Widget, opts toolkit.Options) error {
	w.packed = append(w.packed, child)
	w.attachOpts = opts.Clone()

	return nil
}

func (w *fakeWidget) GridChild(child toolkit.Widget, opts toolkit.Options) error {
	w.gridded = append(w.gridded, child)
	w.attachOpts = opts.Clone()

	return nil
}

func (w *fakeWidget) WeighRow(index int)    { w.rows = append(w.rows, index) }
func (w *fakeWidget) WeighColumn(index int) { w.columns = append(w.columns, index) }

func (w *fakeWidget) PlaceChild(child toolkit.Widget, opts toolkit.Options) error {
	w.placed = append(w.placed, child)
	w.attachOpts = opts.Clone()

	return nil
}
