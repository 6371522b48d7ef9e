package lang

import (
	"iter"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Scanner splits a document into tags. Tags begin at a marker rune and run
// to the next marker; text before the first marker becomes a tag of its own
// so malformed input surfaces as an unknown-tag error instead of vanishing.
//
// Newlines and tabs carry no meaning in markup and are removed before
// scanning, so documents can be formatted freely.
type Scanner struct {
	text  string
	pos   int
	start int
}

// NewScanner prepares a scanner for the given document. When the string
// names an existing file, the file's contents are scanned instead of the
// string itself.
func NewScanner(document string) (*Scanner, error) {
	text := document

	if info, err := os.Stat(document); err == nil && !info.IsDir() {
		data, err := os.ReadFile(document)
		if err != nil {
			return nil, ErrReadDocument.Wrap(err).With(
				slog.String("path", document),
			)
		}

		text = string(data)
	}

	text = strings.NewReplacer("\n", "", "\t", "").Replace(text)

	return &Scanner{text: strings.TrimSpace(text)}, nil
}

// Tags returns a single-use iterator over the document's tags. The scanner
// advances as tags are consumed; ranging a second time continues where the
// first range stopped.
func (s *Scanner) Tags() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for s.pos < len(s.text) {
			r, size := utf8.DecodeRuneInString(s.text[s.pos:])

			if isMarker(r) && s.pos > s.start {
				tag, ok := makeTag(s.text[s.start:s.pos])
				s.start = s.pos

				if ok && !yield(tag) {
					return
				}
			}

			s.pos += size
		}

		if s.start < s.pos {
			tag, ok := makeTag(s.text[s.start:s.pos])
			s.start = s.pos

			if ok {
				yield(tag)
			}
		}
	}
}

// makeTag trims one buffered chunk and splits it into marker and payload.
// Chunks that are empty after trimming produce no tag.
func makeTag(chunk string) (Tag, bool) {
	chunk = strings.TrimSpace(chunk)
	if chunk == "" {
		return Tag{}, false
	}

	r, size := utf8.DecodeRuneInString(chunk)

	return Tag{Marker: r, Payload: strings.TrimSpace(chunk[size:])}, true
}
