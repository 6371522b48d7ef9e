package toolkit

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Option keys recognized by the layout strategies.
const (
	OptionSide       = "side"
	OptionRow        = "row"
	OptionColumn     = "column"
	OptionRowSpan    = "rowspan"
	OptionColumnSpan = "columnspan"
	OptionX          = "x"
	OptionY          = "y"
)

// DefaultLayout names the strategy used when markup does not specify one.
const DefaultLayout = "pack"

// Layout attaches a child widget to its parent using one geometry strategy.
type Layout interface {
	// Name returns the markup name of the strategy.
	Name() string

	// Attach hands the child to its parent with the remaining options.
	Attach(child, parent Widget, opts Options) error
}

// Preparer is implemented by layouts that configure the parent before a
// child is attached.
type Preparer interface {
	Prepare(parent Widget, opts Options) error
}

//nolint:gochecknoglobals
var layouts = sync.OnceValue(
	func() map[string]Layout {
		return map[string]Layout{
			"pack":  packLayout{},
			"grid":  gridLayout{},
			"place": placeLayout{},
		}
	},
)

// LayoutByName resolves a layout strategy from its markup name.
// Lookup is case-insensitive.
func LayoutByName(name string) (Layout, bool) {
	l, ok := layouts()[strings.ToLower(strings.TrimSpace(name))]

	return l, ok
}

// Layouts returns an iterator over the names of all layout strategies.
func Layouts() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range slices.Sorted(maps.Keys(layouts())) {
			if !yield(name) {
				return
			}
		}
	}
}

// packLayout stacks children along a side of the parent's remaining space.
type packLayout struct{}

func (packLayout) Name() string { return "pack" }

func (packLayout) Attach(child, parent Widget, opts Options) error {
	pc, ok := parent.(PackContainer)
	if !ok {
		return errCannotHold("pack", parent)
	}

	return pc.PackChild(child, opts)
}

// gridLayout positions children in rows and columns.
type gridLayout struct{}

func (gridLayout) Name() string { return "grid" }

// Prepare marks every row and column spanned by the child as stretchable
// before the child itself is attached.
func (gridLayout) Prepare(parent Widget, opts Options) error {
	gc, ok := parent.(GridContainer)
	if !ok {
		return errCannotHold("grid", parent)
	}

	cell, err := GridCell(opts)
	if err != nil {
		return err
	}

	for r := cell.Row; r < cell.Row+cell.RowSpan; r++ {
		gc.WeighRow(r)
	}

	for c := cell.Column; c < cell.Column+cell.ColumnSpan; c++ {
		gc.WeighColumn(c)
	}

	return nil
}

func (gridLayout) Attach(child, parent Widget, opts Options) error {
	gc, ok := parent.(GridContainer)
	if !ok {
		return errCannotHold("grid", parent)
	}

	if _, err := GridCell(opts); err != nil {
		return err
	}

	return gc.GridChild(child, opts)
}

// placeLayout positions children at fixed coordinates.
type placeLayout struct{}

func (placeLayout) Name() string { return "place" }

func (placeLayout) Attach(child, parent Widget, opts Options) error {
	pc, ok := parent.(PlaceContainer)
	if !ok {
		return errCannotHold("place", parent)
	}

	return pc.PlaceChild(child, opts)
}

// Cell describes the grid geometry of one child.
type Cell struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
}

// GridCell extracts and validates grid geometry from layout options.
// Row and column are required and must be non-negative. Spans default to 1.
func GridCell(opts Options) (Cell, error) {
	row, ok := opts.GetInt(OptionRow)
	if !ok {
		return Cell{}, ErrLayoutOption.With(slog.String("missing", OptionRow))
	}

	col, ok := opts.GetInt(OptionColumn)
	if !ok {
		return Cell{}, ErrLayoutOption.With(slog.String("missing", OptionColumn))
	}

	if row < 0 || col < 0 {
		return Cell{}, ErrLayoutOption.With(
			slog.Int(OptionRow, row),
			slog.Int(OptionColumn, col),
		)
	}

	cell := Cell{Row: row, Column: col, RowSpan: 1, ColumnSpan: 1}

	if n, ok := opts.GetInt(OptionRowSpan); ok && n > 0 {
		cell.RowSpan = n
	}

	if n, ok := opts.GetInt(OptionColumnSpan); ok && n > 0 {
		cell.ColumnSpan = n
	}

	return cell, nil
}

func errCannotHold(layout string, parent Widget) error {
	kind := "nil"
	if parent != nil {
		kind = parent.Kind().String()
	}

	return ErrLayoutOption.With(
		slog.String("layout", layout),
		slog.String("parent", kind),
	)
}
