package toolkit

import "context"

// Func is the callable currency of the toolkit. Functions imported by a
// document and bound to widget options, such as a button's command, have
// this signature.
type Func func(ctx context.Context, args []any, opts Options) (any, error)

// Widget is a single constructed interface element.
type Widget interface {
	// Kind reports the widget's kind.
	Kind() Kind

	// Configure applies options to an already constructed widget.
	Configure(opts Options) error

	// Option returns the current value of a configuration option.
	Option(name string) (any, bool)
}

// Toolkit constructs widgets and drives the interface event loop.
//
// Implementations decide what a widget kind means on their medium. The
// compiler only depends on this interface, so documents compile the same
// against a terminal renderer or a test double.
type Toolkit interface {
	// Construct creates a widget of the given kind. The parent is nil for
	// root widgets. Positional args and options arrive evaluated from
	// markup with reserved keys already removed.
	Construct(kind Kind, parent Widget, args []any, opts Options) (Widget, error)

	// Run displays the interface rooted at root and blocks until the
	// interface closes or ctx is canceled.
	Run(ctx context.Context, root Widget) error
}

// Stopper is implemented by toolkits that can be shut down from callbacks.
type Stopper interface {
	Stop()
}

// Focuser is implemented by toolkits that can move input focus to a widget.
type Focuser interface {
	Focus(w Widget) error
}

// ChildLister is implemented by container widgets exposing their children.
type ChildLister interface {
	Children() []Widget
}

// OptionLister is implemented by widgets exposing a snapshot of their
// current options.
type OptionLister interface {
	Options() Options
}

// PackContainer accepts children laid out by the pack strategy.
type PackContainer interface {
	PackChild(child Widget, opts Options) error
}

// GridContainer accepts children laid out by the grid strategy.
type GridContainer interface {
	GridChild(child Widget, opts Options) error

	// WeighRow marks a row index as stretchable when the container is
	// larger than its natural size.
	WeighRow(index int)

	// WeighColumn marks a column index as stretchable.
	WeighColumn(index int)
}

// PlaceContainer accepts children positioned at fixed coordinates.
type PlaceContainer interface {
	PlaceChild(child Widget, opts Options) error
}
