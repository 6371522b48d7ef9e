package lang

import (
	"context"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/teadoc/teadoc/toolkit"
)

// guiPromise carries the GUI under construction to self-referencing
// callables evaluated before the root element exists. The compiler creates
// one promise per compilation and the builder fulfills it when the root
// opens.
type guiPromise struct {
	gui *GUI
}

// GUI is a compiled interface: the root widget plus a registry of named
// elements and shared variables. It is safe for concurrent use.
type GUI struct {
	tk   toolkit.Toolkit
	root toolkit.Widget

	mu    sync.RWMutex
	named map[string]any
}

func newGUI(tk toolkit.Toolkit, root toolkit.Widget) *GUI {
	return &GUI{tk: tk, root: root, named: make(map[string]any)}
}

// Root returns the root widget.
func (g *GUI) Root() toolkit.Widget { return g.root }

// Toolkit returns the toolkit that constructed this interface.
func (g *GUI) Toolkit() toolkit.Toolkit { return g.tk }

// Lookup returns the named element or variable, reporting whether it is
// registered.
func (g *GUI) Lookup(name string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.named[name]

	return v, ok
}

// Contains reports whether a name is registered.
func (g *GUI) Contains(name string) bool {
	_, ok := g.Lookup(name)

	return ok
}

// Names enumerates registered names in sorted order.
func (g *GUI) Names() iter.Seq[string] {
	g.mu.RLock()
	names := slices.Sorted(maps.Keys(g.named))
	g.mu.RUnlock()

	return slices.Values(names)
}

// Get returns the named value, or fallback when the name is not registered.
func (g *GUI) Get(name string, fallback any) any {
	if v, ok := g.Lookup(name); ok {
		return v
	}

	return fallback
}

// SetDefault registers fallback under name unless the name is already
// registered, returning whichever value is registered afterward. An empty
// name or an unregistered nil fallback stores nothing.
func (g *GUI) SetDefault(name string, fallback any) any {
	if name == "" {
		return fallback
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.named[name]; ok {
		return v
	}

	if fallback != nil {
		g.named[name] = fallback
	}

	return fallback
}

// put registers a value under name, overwriting any previous registration.
func (g *GUI) put(name string, value any) {
	if name == "" {
		return
	}

	g.mu.Lock()
	g.named[name] = value
	g.mu.Unlock()
}

// Start runs the interface until the context is canceled or the toolkit
// stops it.
func (g *GUI) Start(ctx context.Context) error {
	return g.tk.Run(ctx, g.root)
}

// Stop requests the running interface to shut down, when the toolkit
// supports it.
func (g *GUI) Stop() {
	if s, ok := g.tk.(toolkit.Stopper); ok {
		s.Stop()
	}
}
