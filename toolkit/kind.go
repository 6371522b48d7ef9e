package toolkit

import (
	"iter"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
)

// Kind identifies a widget type constructible by a [Toolkit].
type Kind int

const (
	KindRoot Kind = iota
	KindFrame
	KindLabel
	KindButton
	KindEntry
	KindText
	KindCanvas
	KindRadio
	KindCheck
	KindCombo
)

// kindName indexes the markup name of each widget kind.
//
//nolint:gochecknoglobals
var kindName = [...]string{
	KindRoot:   "root",
	KindFrame:  "frame",
	KindLabel:  "label",
	KindButton: "button",
	KindEntry:  "entry",
	KindText:   "text",
	KindCanvas: "canvas",
	KindRadio:  "radio",
	KindCheck:  "check",
	KindCombo:  "combo",
}

// kindByName is the reverse index of kindName.
//
//nolint:gochecknoglobals
var kindByName = sync.OnceValue(
	func() map[string]Kind {
		m := make(map[string]Kind, len(kindName))
		for k, name := range kindName {
			m[name] = Kind(k)
		}

		return m
	},
)

// String returns the markup name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindName) {
		return "unknown"
	}

	return kindName[k]
}

// ParseKind resolves a widget kind from its markup name.
// Lookup is case-insensitive.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName()[strings.ToLower(strings.TrimSpace(name))]

	return k, ok
}

// Kinds returns an iterator over the markup names of all widget kinds.
func Kinds() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range kindName {
			if !yield(name) {
				return
			}
		}
	}
}

// SuggestKind returns the known kind name most similar to the given input,
// or an empty string when nothing is plausibly close.
func SuggestKind(name string) string {
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(name)), kindName[:])
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
