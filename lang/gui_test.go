package lang

import (
	"slices"
	"testing"

	"github.com/teadoc/teadoc/toolkit"
)

func TestGUI_Registry(t *testing.T) {
	tk := newFakeToolkit()
	g := newGUI(tk, nil)

	g.put("a", 1)
	g.put("c", 3)
	g.put("b", 2)

	if v, ok := g.Lookup("a"); !ok || v != 1 {
		t.Errorf("Lookup(a) = %v, %v", v, ok)
	}

	if _, ok := g.Lookup("missing"); ok {
		t.Error("Lookup(missing) reported ok")
	}

	if !g.Contains("b") || g.Contains("z") {
		t.Error("Contains misreports registration")
	}

	if v := g.Get("c", nil); v != 3 {
		t.Errorf("Get(c) = %v, want 3", v)
	}

	if v := g.Get("z", "fallback"); v != "fallback" {
		t.Errorf("Get(z) = %v, want fallback", v)
	}

	got := slices.Collect(g.Names())

	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestGUI_PutOverwrites(t *testing.T) {
	g := newGUI(newFakeToolkit(), nil)

	g.put("x", 1)
	g.put("x", 2)

	if v, _ := g.Lookup("x"); v != 2 {
		t.Errorf("Lookup(x) = %v, want 2", v)
	}
}

func TestGUI_SetDefault(t *testing.T) {
	g := newGUI(newFakeToolkit(), nil)

	v := toolkit.NewIntVar()

	if got := g.SetDefault("var", v); got != v {
		t.Error("SetDefault did not return the stored fallback")
	}

	other := toolkit.NewIntVar()

	if got := g.SetDefault("var", other); got != v {
		t.Error("SetDefault replaced an existing registration")
	}

	// An empty name stores nothing.
	if got := g.SetDefault("", v); got != v {
		t.Error("SetDefault with empty name did not return fallback")
	}

	if g.Contains("") {
		t.Error("empty name was registered")
	}

	// A nil fallback for an absent name stores nothing.
	if got := g.SetDefault("nil", nil); got != nil {
		t.Errorf("SetDefault(nil) = %v, want nil", got)
	}

	if g.Contains("nil") {
		t.Error("nil fallback was registered")
	}
}

func TestGUI_StartStop(t *testing.T) {
	tk := newFakeToolkit()
	g := newGUI(tk, nil)

	if err := g.Start(t.Context()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if !tk.running {
		t.Error("Start did not run the toolkit")
	}

	g.Stop()

	if !tk.stopped {
		t.Error("Stop did not reach the toolkit")
	}
}
