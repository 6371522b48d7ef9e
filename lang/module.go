package lang

import (
	"iter"
	"maps"
	"slices"

	"github.com/agnivade/levenshtein"

	"github.com/teadoc/teadoc/toolkit"
)

// Module is a named set of callable functions a document can import.
type Module interface {
	// Name returns the canonical name used in import statements.
	Name() string
	// Func returns the named function, reporting whether it exists.
	Func(name string) (toolkit.Func, bool)
}

// FuncLister is an optional Module capability that enumerates function
// names. Modules implementing it get close-match suggestions on unknown
// function errors.
type FuncLister interface {
	// Funcs enumerates function names in sorted order.
	Funcs() iter.Seq[string]
}

// Resolver locates modules by canonical name at import time.
type Resolver interface {
	// Resolve returns the named module, reporting whether it exists.
	Resolve(name string) (Module, bool)
	// Modules enumerates canonical module names in sorted order.
	Modules() iter.Seq[string]
}

type mapModule struct {
	name  string
	funcs map[string]toolkit.Func
}

// NewModule constructs a module from a function table. The table is copied,
// so later mutation of funcs does not affect the module.
func NewModule(name string, funcs map[string]toolkit.Func) Module {
	return &mapModule{name: name, funcs: maps.Clone(funcs)}
}

func (m *mapModule) Name() string { return m.name }

func (m *mapModule) Func(name string) (toolkit.Func, bool) {
	fn, ok := m.funcs[name]

	return fn, ok
}

func (m *mapModule) Funcs() iter.Seq[string] {
	names := slices.Sorted(maps.Keys(m.funcs))

	return slices.Values(names)
}

type registry struct {
	modules map[string]Module
}

// NewResolver constructs a resolver over a fixed set of modules. Modules
// registered later win on name collision.
func NewResolver(modules ...Module) Resolver {
	r := &registry{modules: make(map[string]Module, len(modules))}
	for _, m := range modules {
		r.modules[m.Name()] = m
	}

	return r
}

func (r *registry) Resolve(name string) (Module, bool) {
	m, ok := r.modules[name]

	return m, ok
}

func (r *registry) Modules() iter.Seq[string] {
	names := slices.Sorted(maps.Keys(r.modules))

	return slices.Values(names)
}

// suggest returns the known name closest to the given misspelling, or the
// empty string when nothing is plausibly close.
func suggest(name string, known iter.Seq[string]) string {
	best, bestDist := "", -1

	for candidate := range known {
		dist := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}

	if bestDist < 0 || bestDist*2 > len(name) {
		return ""
	}

	return best
}
