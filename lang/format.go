package lang

import (
	"fmt"
	"io"
	"strings"
)

// Format rewrites a document with one tag per line, indented by nesting
// depth. Arguments indent one level past the tag they extend. The document
// may be markup text or the path of a file containing markup; formatting
// an already formatted document reproduces it.
func Format(w io.Writer, document string) error {
	scanner, err := NewScanner(document)
	if err != nil {
		return err
	}

	depth, argDepth := 0, 1

	for tag := range scanner.Tags() {
		at := depth

		switch tag.Marker {
		case MarkerOpen:
			depth++
			argDepth = at + 1

		case MarkerClose:
			if depth > 0 {
				depth--
			}

			at = depth
			argDepth = at + 1

		case MarkerSinglet, MarkerCall:
			argDepth = at + 1

		case MarkerArgument:
			at = argDepth
		}

		if _, err := fmt.Fprintln(w, indent(at)+tag.String()); err != nil {
			return err
		}
	}

	return nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
