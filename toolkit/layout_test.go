package toolkit

import (
	"errors"
	"slices"
	"testing"
)

// stubWidget records layout attachments for strategy tests.
type stubWidget struct {
	kind     Kind
	packed   []Widget
	gridded  []Widget
	placed   []Widget
	rows     []int
	columns  []int
	lastOpts Options
}

func (w *stubWidget) Kind() Kind                { return w.kind }
func (w *stubWidget) Configure(Options) error   { return nil }
func (w *stubWidget) Option(string) (any, bool) { return nil, false }

func (w *stubWidget) PackChild(c Widget, o Options) error {
	w.packed = append(w.packed, c)
	w.lastOpts = o

	return nil
}

func (w *stubWidget) GridChild(c Widget, o Options) error {
	w.gridded = append(w.gridded, c)
	w.lastOpts = o

	return nil
}

func (w *stubWidget) PlaceChild(c Widget, o Options) error {
	w.placed = append(w.placed, c)
	w.lastOpts = o

	return nil
}

func (w *stubWidget) WeighRow(i int)    { w.rows = append(w.rows, i) }
func (w *stubWidget) WeighColumn(i int) { w.columns = append(w.columns, i) }

// leafWidget implements Widget without any container capability.
type leafWidget struct{ kind Kind }

func (w *leafWidget) Kind() Kind                { return w.kind }
func (w *leafWidget) Configure(Options) error   { return nil }
func (w *leafWidget) Option(string) (any, bool) { return nil, false }

func TestLayoutByName(t *testing.T) {
	for _, name := range []string{"pack", "Grid", " PLACE "} {
		l, ok := LayoutByName(name)
		if !ok {
			t.Errorf("LayoutByName(%q) not found", name)
			continue
		}
		if l.Name() == "" {
			t.Errorf("LayoutByName(%q) returned unnamed strategy", name)
		}
	}

	if _, ok := LayoutByName("flow"); ok {
		t.Error("unknown layout name resolved")
	}
}

func TestLayouts_Sorted(t *testing.T) {
	got := slices.Collect(Layouts())
	want := []string{"grid", "pack", "place"}

	if !slices.Equal(got, want) {
		t.Errorf("Layouts() = %v, want %v", got, want)
	}
}

func TestPackLayout_Attach(t *testing.T) {
	parent := &stubWidget{kind: KindFrame}
	child := &leafWidget{kind: KindLabel}

	l, _ := LayoutByName("pack")
	if err := l.Attach(child, parent, Options{"side": "left"}); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if len(parent.packed) != 1 || parent.packed[0] != Widget(child) {
		t.Error("child not packed into parent")
	}
	if side, _ := parent.lastOpts.GetString("side"); side != "left" {
		t.Error("pack options not forwarded")
	}
}

func TestPackLayout_Attach_RejectsLeafParent(t *testing.T) {
	l, _ := LayoutByName("pack")
	err := l.Attach(&leafWidget{kind: KindLabel}, &leafWidget{kind: KindLabel}, nil)

	if !errors.Is(err, ErrLayoutOption) {
		t.Errorf("expected ErrLayoutOption, got %v", err)
	}
}

func TestGridLayout_Attach_RequiresRowAndColumn(t *testing.T) {
	parent := &stubWidget{kind: KindFrame}
	child := &leafWidget{kind: KindButton}
	l, _ := LayoutByName("grid")

	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"both present", Options{"row": int64(0), "column": int64(1)}, true},
		{"missing row", Options{"column": int64(1)}, false},
		{"missing column", Options{"row": int64(0)}, false},
		{"negative row", Options{"row": int64(-1), "column": int64(0)}, false},
		{"non-integer row", Options{"row": "top", "column": int64(0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Attach(child, parent, tt.opts)
			if tt.ok && err != nil {
				t.Errorf("Attach: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrLayoutOption) {
				t.Errorf("expected ErrLayoutOption, got %v", err)
			}
		})
	}
}

func TestGridLayout_Prepare_WeighsSpannedIndices(t *testing.T) {
	parent := &stubWidget{kind: KindFrame}
	l, _ := LayoutByName("grid")

	p, ok := l.(Preparer)
	if !ok {
		t.Fatal("grid layout does not implement Preparer")
	}

	opts := Options{
		"row": int64(1), "column": int64(2),
		"rowspan": int64(2), "columnspan": int64(3),
	}
	if err := p.Prepare(parent, opts); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if !slices.Equal(parent.rows, []int{1, 2}) {
		t.Errorf("weighed rows = %v, want [1 2]", parent.rows)
	}
	if !slices.Equal(parent.columns, []int{2, 3, 4}) {
		t.Errorf("weighed columns = %v, want [2 3 4]", parent.columns)
	}
}

func TestPlaceLayout_Attach(t *testing.T) {
	parent := &stubWidget{kind: KindRoot}
	child := &leafWidget{kind: KindCanvas}

	l, _ := LayoutByName("place")
	if err := l.Attach(child, parent, Options{"x": int64(4), "y": int64(2)}); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if len(parent.placed) != 1 {
		t.Error("child not placed into parent")
	}
}

func TestGridCell_Defaults(t *testing.T) {
	cell, err := GridCell(Options{"row": int64(3), "column": int64(0)})
	if err != nil {
		t.Fatalf("GridCell: %v", err)
	}

	want := Cell{Row: 3, Column: 0, RowSpan: 1, ColumnSpan: 1}
	if cell != want {
		t.Errorf("GridCell = %+v, want %+v", cell, want)
	}
}
