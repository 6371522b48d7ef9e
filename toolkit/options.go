package toolkit

import "maps"

// Options carries named configuration values for widget construction,
// configuration, and layout. Keys are markup option names and values are
// evaluated literals.
type Options map[string]any

// Pull removes key from the options and returns its value.
// The second return reports whether the key was present.
func (o Options) Pull(key string) (any, bool) {
	v, ok := o[key]
	if ok {
		delete(o, key)
	}

	return v, ok
}

// GetString returns the value of key when it is present and a string.
func (o Options) GetString(key string) (string, bool) {
	v, ok := o[key]
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// GetInt returns the value of key when it is present and an integer.
// Evaluated markup numbers arrive as int64; native int is accepted too.
func (o Options) GetInt(key string) (int, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetBool returns the value of key when it is present and a boolean.
func (o Options) GetBool(key string) (bool, bool) {
	v, ok := o[key]
	if !ok {
		return false, false
	}

	b, ok := v.(bool)

	return b, ok
}

// Clone returns a shallow copy of the options.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}

	return maps.Clone(o)
}
