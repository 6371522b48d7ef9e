package lang

import "strings"

// Tag markers. Every tag in a document begins with exactly one of these.
const (
	MarkerOpen     = '\\' // open a widget and push it on the tree
	MarkerClose    = '/'  // close the innermost open widget
	MarkerSinglet  = '|'  // open and close a widget in one tag
	MarkerCall     = '$'  // call an imported function, or import a module
	MarkerArgument = ','  // argument to the preceding tag
)

// markers collects every tag marker for membership tests.
const markers = `\/|,$`

// Reserved option keys consumed by the builder before construction.
// They keep their markup spellings.
const (
	// KeyName registers the constructed widget in the GUI under this name.
	KeyName = "key"
	// KeyVariable registers (or reuses) a shared variable under this name.
	KeyVariable = "var_key"
	// KeyLayout selects the geometry strategy when closing a widget.
	KeyLayout = "layout"
)

// Literal forms recognized by the evaluator.
const (
	trueLiteral  = "True"
	falseLiteral = "False"

	reference     = "?"
	selfReference = "??"

	listOpen      = '{'
	listClose     = '}'
	listSeparator = ":"
)

// Import statement keywords.
const (
	importKeyword = "import"
	aliasKeyword  = "as"
)

// Tag is one scanned markup tag: a marker rune followed by its payload with
// surrounding whitespace removed.
type Tag struct {
	Marker  rune
	Payload string
}

// String reassembles the tag as it would appear in canonical markup.
func (t Tag) String() string {
	return string(t.Marker) + t.Payload
}

func isMarker(r rune) bool {
	return strings.ContainsRune(markers, r)
}
