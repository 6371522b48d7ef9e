package lang

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func collectTags(t *testing.T, document string) []Tag {
	t.Helper()

	s, err := NewScanner(document)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	return slices.Collect(s.Tags())
}

func TestScanner_Tags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Tag
	}{
		{
			name:  "single open",
			input: `\root`,
			want:  []Tag{{'\\', "root"}},
		},
		{
			name:  "open arguments close",
			input: `\root,title=Login/`,
			want: []Tag{
				{'\\', "root"},
				{',', "title=Login"},
				{'/', ""},
			},
		},
		{
			name:  "newlines and tabs removed",
			input: "\\root\n\t, title = Login\n/",
			want: []Tag{
				{'\\', "root"},
				{',', "title = Login"},
				{'/', ""},
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \\root , text=x  /  ",
			want: []Tag{
				{'\\', "root"},
				{',', "text=x"},
				{'/', ""},
			},
		},
		{
			name:  "singlet and call",
			input: `|label,text=hi$app.quit`,
			want: []Tag{
				{'|', "label"},
				{',', "text=hi"},
				{'$', "app.quit"},
			},
		},
		{
			name:  "text before first marker becomes a tag",
			input: `junk\root`,
			want: []Tag{
				{'j', "unk"},
				{'\\', "root"},
			},
		},
		{
			name:  "bare marker",
			input: `\`,
			want:  []Tag{{'\\', ""}},
		},
		{
			name:  "consecutive closers",
			input: `//`,
			want: []Tag{
				{'/', ""},
				{'/', ""},
			},
		},
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectTags(t, tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanner_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.ted")

	err := os.WriteFile(path, []byte("\\root\n, title=File\n/\n"), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got := collectTags(t, path)

	want := []Tag{
		{'\\', "root"},
		{',', "title=File"},
		{'/', ""},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestScanner_DirectoryScansAsText(t *testing.T) {
	// A directory path cannot be read as a document, so the path itself
	// is scanned as markup text.
	dir := t.TempDir()

	got := collectTags(t, dir)
	if len(got) == 0 {
		t.Fatal("expected at least one tag from path text")
	}
}

func TestScanner_Resume(t *testing.T) {
	s, err := NewScanner(`\root,title=x/`)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	var first Tag
	for tag := range s.Tags() {
		first = tag

		break
	}

	if (first != Tag{'\\', "root"}) {
		t.Fatalf("first tag = %v, want \\root", first)
	}

	rest := slices.Collect(s.Tags())

	want := []Tag{
		{',', "title=x"},
		{'/', ""},
	}
	if !slices.Equal(rest, want) {
		t.Errorf("resumed Tags() = %v, want %v", rest, want)
	}
}

func TestTag_String(t *testing.T) {
	tag := Tag{Marker: '\\', Payload: "frame"}
	if got := tag.String(); got != `\frame` {
		t.Errorf("String() = %q, want %q", got, `\frame`)
	}

	empty := Tag{Marker: '/'}
	if got := empty.String(); got != "/" {
		t.Errorf("String() = %q, want %q", got, "/")
	}
}
