package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

const sampleDoc = `\root , title = Sample , key = top |label , text = hi /`

func writeDoc(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	orig := os.Stdout
	os.Stdout = w

	done := make(chan string, 1)

	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	runErr := fn()

	_ = w.Close()
	os.Stdout = orig

	if runErr != nil {
		t.Fatalf("command failed: %v", runErr)
	}

	return <-done
}

func TestResolveSource_ExistingFile(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "form.ted")

	got, err := resolveSource(t.Context(), path)
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}

	if got != path {
		t.Errorf("resolveSource = %q, want %q", got, path)
	}
}

func TestResolveSource_SearchPath(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "form.ted")

	t.Setenv(pathEnv, dir)

	// Bare name with extension
	got, err := resolveSource(t.Context(), "form.ted")
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}

	if got != path {
		t.Errorf("resolveSource(form.ted) = %q, want %q", got, path)
	}

	// Bare name without extension tries the .ted candidate
	got, err = resolveSource(t.Context(), "form")
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}

	if got != path {
		t.Errorf("resolveSource(form) = %q, want %q", got, path)
	}
}

func TestResolveSource_SearchPathOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	want := writeDoc(t, first, "app.ted")
	writeDoc(t, second, "app.ted")

	t.Setenv(pathEnv, strings.Join(
		[]string{first, second},
		string(os.PathListSeparator),
	))

	got, err := resolveSource(t.Context(), "app")
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}

	if got != want {
		t.Errorf("resolveSource = %q, want first match %q", got, want)
	}
}

func TestResolveSource_LiteralMarkup(t *testing.T) {
	t.Setenv(pathEnv, "")

	got, err := resolveSource(t.Context(), sampleDoc)
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}

	if got != sampleDoc {
		t.Errorf("resolveSource rewrote literal markup: %q", got)
	}
}

func TestResolveSource_SeparatorBypassesSearch(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "form.ted")

	t.Setenv(pathEnv, dir)

	// A path that does not exist is not searched for by name.
	source := filepath.Join("missing", "form.ted")

	got, err := resolveSource(t.Context(), source)
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}

	if got != source {
		t.Errorf("resolveSource = %q, want %q unchanged", got, source)
	}
}

func TestResolveSource_Stdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	orig := os.Stdin
	os.Stdin = r

	t.Cleanup(func() { os.Stdin = orig })

	go func() {
		_, _ = w.WriteString(sampleDoc)
		_ = w.Close()
	}()

	got, err := resolveSource(t.Context(), stdinSource)
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}

	if got != sampleDoc {
		t.Errorf("resolveSource(-) = %q, want stdin contents", got)
	}
}

func TestSearchPath_SkipsEmptyEntries(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	t.Setenv(pathEnv, strings.Join(
		[]string{first, "", second},
		string(os.PathListSeparator),
	))

	dirs := searchPath(t.Context())

	if len(dirs) != 2 || dirs[0] != first || dirs[1] != second {
		t.Errorf("searchPath = %v, want [%s %s]", dirs, first, second)
	}
}

func TestWithContext_RoundTrip(t *testing.T) {
	parser, err := kong.New(&struct{}{})
	if err != nil {
		t.Fatalf("kong.New failed: %v", err)
	}

	ktx, err := parser.Parse([]string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	ctx := WithContext(t.Context(), ktx)

	if got := kongContextFrom(ctx); got != ktx {
		t.Error("kong context not recovered from context")
	}

	if got := kongContextFrom(t.Context()); got != nil {
		t.Errorf("kongContextFrom without parser = %v, want nil", got)
	}
}

func TestConfigDirFrom_Vars(t *testing.T) {
	confDir := t.TempDir()

	parser, err := kong.New(&struct{}{}, kong.Vars{
		ConfigIdentifier: filepath.Join(confDir, "config"),
	})
	if err != nil {
		t.Fatalf("kong.New failed: %v", err)
	}

	ktx, err := parser.Parse([]string{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	ctx := WithContext(t.Context(), ktx)

	if got := configDirFrom(ctx); got != confDir {
		t.Errorf("configDirFrom = %q, want %q", got, confDir)
	}

	if got := configDirFrom(t.Context()); got != "" {
		t.Errorf("configDirFrom without parser = %q, want empty", got)
	}
}
