package lang

import (
	"log/slog"

	"github.com/teadoc/teadoc/log"
	"github.com/teadoc/teadoc/toolkit"
)

// Builder assembles the widget tree as elements open and close. It tracks
// the chain of open containers so each new element attaches to the
// innermost one, and it owns the interface registry while compilation is
// in flight.
type Builder struct {
	tk  toolkit.Toolkit
	log log.Logger

	frames  []toolkit.Widget
	current toolkit.Widget

	gui     *GUI
	promise *guiPromise
}

// NewBuilder constructs a builder that realizes elements with the given
// toolkit.
func NewBuilder(tk toolkit.Toolkit) *Builder {
	return &Builder{tk: tk}
}

// Open constructs an element of the given kind and makes it the innermost
// open container. The first opened element becomes the root.
func (b *Builder) Open(kind toolkit.Kind, args []any, opts toolkit.Options) error {
	if kind == toolkit.KindRoot {
		return b.openRoot(args, opts)
	}

	return b.openChild(kind, args, opts)
}

func (b *Builder) openRoot(args []any, opts toolkit.Options) error {
	if b.current != nil {
		return ErrDuplicateRoot
	}

	name := b.pullName(opts)

	root, err := b.tk.Construct(toolkit.KindRoot, nil, args, opts)
	if err != nil {
		return WrapError(err)
	}

	b.gui = newGUI(b.tk, root)
	if b.promise != nil {
		b.promise.gui = b.gui
	}

	b.gui.put(name, root)
	b.current = root

	return nil
}

func (b *Builder) openChild(kind toolkit.Kind, args []any, opts toolkit.Options) error {
	if b.current == nil {
		return ErrInvalidParent.With(slog.String("kind", kind.String()))
	}

	name := b.pullName(opts)

	switch kind {
	case toolkit.KindRadio, toolkit.KindCheck:
		v, err := b.sharedInt(opts)
		if err != nil {
			return err
		}

		opts["variable"] = v

	case toolkit.KindCombo:
		v, err := b.sharedString(opts)
		if err != nil {
			return err
		}

		opts["textvariable"] = v
	}

	w, err := b.tk.Construct(kind, b.current, args, opts)
	if err != nil {
		return WrapError(err)
	}

	if kind == toolkit.KindCombo {
		if err := w.Configure(toolkit.Options{"state": "readonly"}); err != nil {
			return WrapError(err)
		}
	}

	b.gui.put(name, w)
	b.frames = append(b.frames, b.current)
	b.current = w

	return nil
}

// sharedInt resolves the shared integer variable for radio and check
// elements. A named variable is registered on the interface so elements
// naming the same key share state; an unnamed variable is private to the
// element.
func (b *Builder) sharedInt(opts toolkit.Options) (*toolkit.IntVar, error) {
	key, ok := opts.Pull(KeyVariable)
	if !ok {
		return toolkit.NewIntVar(), nil
	}

	name, ok := key.(string)
	if !ok {
		return nil, ErrInvalidName.With(slog.Any("value", key))
	}

	if name == "" {
		return toolkit.NewIntVar(), nil
	}

	v, ok := b.gui.SetDefault(name, toolkit.NewIntVar()).(*toolkit.IntVar)
	if !ok {
		return nil, ErrInvalidName.With(slog.String("name", name))
	}

	return v, nil
}

func (b *Builder) sharedString(opts toolkit.Options) (*toolkit.StringVar, error) {
	key, ok := opts.Pull(KeyVariable)
	if !ok {
		return toolkit.NewStringVar(), nil
	}

	name, ok := key.(string)
	if !ok {
		return nil, ErrInvalidName.With(slog.Any("value", key))
	}

	if name == "" {
		return toolkit.NewStringVar(), nil
	}

	v, ok := b.gui.SetDefault(name, toolkit.NewStringVar()).(*toolkit.StringVar)
	if !ok {
		return nil, ErrInvalidName.With(slog.String("name", name))
	}

	return v, nil
}

// pullName removes the registry name from an element's options and
// returns it, or the empty string when the element is anonymous.
func (b *Builder) pullName(opts toolkit.Options) string {
	key, ok := opts.Pull(KeyName)
	if !ok {
		return ""
	}

	name, _ := key.(string)

	return name
}

// Close attaches the innermost open element to its parent using the layout
// named in opts and reopens the parent. Closing with nothing open, or
// closing the root, is a no-op that leaves the finished tree intact.
func (b *Builder) Close(args []any, opts toolkit.Options) error {
	name := toolkit.DefaultLayout
	if v, ok := opts.Pull(KeyLayout); ok {
		if s, ok := v.(string); ok && s != "" {
			name = s
		}
	}

	if b.current == nil {
		b.reset()

		return nil
	}

	child := b.current

	if len(b.frames) == 0 {
		b.reset()

		return nil
	}

	parent := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]

	if len(args) > 0 {
		b.log.Debug("discarding close arguments",
			slog.Int("count", len(args)),
		)
	}

	layout, ok := toolkit.LayoutByName(name)
	if !ok {
		return WrapError(toolkit.ErrInvalidLayout.With(slog.String("layout", name)))
	}

	if p, ok := layout.(toolkit.Preparer); ok {
		if err := p.Prepare(parent, opts); err != nil {
			return WrapError(err)
		}
	}

	if err := layout.Attach(child, parent, opts); err != nil {
		return WrapError(err)
	}

	b.current = parent

	return nil
}

// Finalize closes every remaining open element and returns the finished
// interface, leaving the builder ready for another document.
func (b *Builder) Finalize() (*GUI, error) {
	if b.gui == nil {
		b.reset()

		return nil, ErrAbsentRoot
	}

	for b.current != nil {
		if err := b.Close(nil, toolkit.Options{}); err != nil {
			return nil, err
		}
	}

	g := b.gui
	b.gui = nil
	b.promise = nil
	b.reset()

	return g, nil
}

// reset discards the open-element chain. The registry under construction
// is preserved so a finished tree survives stray close tags.
func (b *Builder) reset() {
	b.frames = nil
	b.current = nil
}
