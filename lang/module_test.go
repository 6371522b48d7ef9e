package lang

import (
	"context"
	"slices"
	"testing"

	"github.com/teadoc/teadoc/toolkit"
)

func noop(context.Context, []any, toolkit.Options) (any, error) {
	return nil, nil
}

func TestNewModule(t *testing.T) {
	funcs := map[string]toolkit.Func{"quit": noop}

	m := NewModule("app", funcs)

	if m.Name() != "app" {
		t.Errorf("Name() = %q, want app", m.Name())
	}

	if _, ok := m.Func("quit"); !ok {
		t.Error("Func(quit) not found")
	}

	if _, ok := m.Func("missing"); ok {
		t.Error("Func(missing) reported ok")
	}

	// The function table is copied at construction.
	funcs["later"] = noop

	if _, ok := m.Func("later"); ok {
		t.Error("module observed mutation of the source table")
	}
}

func TestNewResolver(t *testing.T) {
	r := NewResolver(
		NewModule("calc", nil),
		NewModule("app", nil),
	)

	if _, ok := r.Resolve("app"); !ok {
		t.Error("Resolve(app) not found")
	}

	if _, ok := r.Resolve("gone"); ok {
		t.Error("Resolve(gone) reported ok")
	}

	got := slices.Collect(r.Modules())

	want := []string{"app", "calc"}
	if !slices.Equal(got, want) {
		t.Errorf("Modules() = %v, want %v", got, want)
	}
}

func TestNewResolver_LaterModuleWins(t *testing.T) {
	first := NewModule("app", nil)
	second := NewModule("app", map[string]toolkit.Func{"quit": noop})

	r := NewResolver(first, second)

	m, ok := r.Resolve("app")
	if !ok {
		t.Fatal("Resolve(app) not found")
	}

	if _, ok := m.Func("quit"); !ok {
		t.Error("resolver kept the earlier module")
	}
}

func TestNewModule_ListsFuncs(t *testing.T) {
	m := NewModule("app", map[string]toolkit.Func{
		"quit":  noop,
		"bell":  noop,
		"focus": noop,
	})

	lister, ok := m.(FuncLister)
	if !ok {
		t.Fatal("constructed module does not enumerate functions")
	}

	got := slices.Collect(lister.Funcs())

	want := []string{"bell", "focus", "quit"}
	if !slices.Equal(got, want) {
		t.Errorf("Funcs() = %v, want %v", got, want)
	}
}

func TestSuggest(t *testing.T) {
	known := func() []string { return []string{"app", "calc"} }

	tests := []struct {
		name string
		want string
	}{
		{"ap", "app"},
		{"apps", "app"},
		{"calk", "calc"},
		{"zzzzz", ""},
		{"x", ""},
	}

	for _, tt := range tests {
		got := suggest(tt.name, slices.Values(known()))
		if got != tt.want {
			t.Errorf("suggest(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
