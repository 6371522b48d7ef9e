package toolkit

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Variable is shared mutable state bound to one or more widgets. Radio
// buttons sharing a selection, or an entry mirroring a label, communicate
// through a common Variable registered by name.
type Variable interface {
	// Value returns the current value.
	Value() any

	// Set replaces the current value. Implementations reject values of an
	// incompatible type with [ErrInvalidValue].
	Set(value any) error
}

// IntVar is an integer-valued [Variable]. It backs the selection state of
// radio and check widgets.
type IntVar struct {
	mu       sync.Mutex
	value    int64
	watchers map[uuid.UUID]func(int64)
}

// NewIntVar creates an IntVar holding zero.
func NewIntVar() *IntVar {
	return &IntVar{watchers: make(map[uuid.UUID]func(int64))}
}

// Get returns the current value.
func (v *IntVar) Get() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.value
}

// SetInt stores a new value and notifies watchers.
// Watchers fire on every store, even when the value is unchanged.
func (v *IntVar) SetInt(n int64) {
	v.mu.Lock()
	v.value = n

	fns := make([]func(int64), 0, len(v.watchers))
	for _, fn := range v.watchers {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	// Watchers run unlocked so they may call back into the variable.
	for _, fn := range fns {
		fn(n)
	}
}

// Value implements [Variable].
func (v *IntVar) Value() any { return v.Get() }

// Set implements [Variable]. It accepts int and int64 values.
func (v *IntVar) Set(value any) error {
	switch n := value.(type) {
	case int64:
		v.SetInt(n)
	case int:
		v.SetInt(int64(n))
	default:
		return ErrInvalidValue.With(
			slog.String("want", "int"),
			slog.Any("got", value),
		)
	}

	return nil
}

// Watch registers a function called after every store. The returned token
// unregisters it through [IntVar.Unwatch].
func (v *IntVar) Watch(fn func(int64)) uuid.UUID {
	token := uuid.New()

	v.mu.Lock()
	defer v.mu.Unlock()

	v.watchers[token] = fn

	return token
}

// Unwatch removes a watcher registered by [IntVar.Watch].
func (v *IntVar) Unwatch(token uuid.UUID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.watchers, token)
}

// StringVar is a string-valued [Variable]. It mirrors the text of entry and
// combo widgets.
type StringVar struct {
	mu       sync.Mutex
	value    string
	watchers map[uuid.UUID]func(string)
}

// NewStringVar creates a StringVar holding the empty string.
func NewStringVar() *StringVar {
	return &StringVar{watchers: make(map[uuid.UUID]func(string))}
}

// Get returns the current value.
func (v *StringVar) Get() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.value
}

// SetString stores a new value and notifies watchers.
// Watchers fire on every store, even when the value is unchanged.
func (v *StringVar) SetString(s string) {
	v.mu.Lock()
	v.value = s

	fns := make([]func(string), 0, len(v.watchers))
	for _, fn := range v.watchers {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Value implements [Variable].
func (v *StringVar) Value() any { return v.Get() }

// Set implements [Variable]. It accepts string values.
func (v *StringVar) Set(value any) error {
	s, ok := value.(string)
	if !ok {
		return ErrInvalidValue.With(
			slog.String("want", "string"),
			slog.Any("got", value),
		)
	}

	v.SetString(s)

	return nil
}

// Watch registers a function called after every store. The returned token
// unregisters it through [StringVar.Unwatch].
func (v *StringVar) Watch(fn func(string)) uuid.UUID {
	token := uuid.New()

	v.mu.Lock()
	defer v.mu.Unlock()

	v.watchers[token] = fn

	return token
}

// Unwatch removes a watcher registered by [StringVar.Watch].
func (v *StringVar) Unwatch(token uuid.UUID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.watchers, token)
}
