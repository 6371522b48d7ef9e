// Package modules provides the built-in modules documents may import.
//
// The app module exposes interface control: quit, focus, get, set, and
// bell. Functions that operate on the interface must be referenced with a
// self-reference (??) so they receive the compiled interface when invoked.
//
// The calc module evaluates expressions through expr-lang, giving
// documents arithmetic and conditional logic without growing the markup
// language itself.
package modules
