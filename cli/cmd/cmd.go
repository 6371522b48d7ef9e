package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ardnew/mung"

	"github.com/teadoc/teadoc/lang"
	"github.com/teadoc/teadoc/log"
	"github.com/teadoc/teadoc/modules"
	"github.com/teadoc/teadoc/term"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// pathEnv names the environment variable listing document directories.
const pathEnv = "TEADOC_PATH"

// docExt is the conventional extension for markup documents.
const docExt = ".ted"

// resolveSource returns the document to compile for a source argument.
//
// The special name "-" reads the document text from stdin. A name that
// resolves to an existing file, either directly or on the document search
// path, returns that file's path. Anything else is returned unchanged and
// compiled as literal markup.
func resolveSource(ctx context.Context, source string) (string, error) {
	if source == stdinSource {
		doc, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", ErrReadSource.Wrap(err).
				With(slog.String("source", "stdin"))
		}

		return string(doc), nil
	}

	if fileExists(source) {
		return source, nil
	}

	// Bare names search TEADOC_PATH and the config directory.
	if !strings.ContainsRune(source, os.PathSeparator) {
		for _, dir := range searchPath(ctx) {
			for _, name := range []string{source, source + docExt} {
				candidate := filepath.Join(dir, name)
				if !fileExists(candidate) {
					continue
				}

				log.DebugContext(ctx, "document resolved",
					slog.String("source", source),
					slog.String("path", candidate),
				)

				return candidate, nil
			}
		}
	}

	// Not a file anywhere. The compiler treats the text itself as markup.
	return source, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// searchPath returns the directories consulted for bare document names.
// TEADOC_PATH entries come first, then the configuration directory.
func searchPath(ctx context.Context) []string {
	path := mung.Make(
		mung.WithSubjectItems(configDirFrom(ctx)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(filepath.SplitList(os.Getenv(pathEnv))...),
		mung.WithFilter(func(dir string) bool { return dir != "" }),
	).String()

	dirs := make([]string, 0, 4)

	for _, dir := range filepath.SplitList(path) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// configDirFrom returns the directory holding the configuration file bound
// to the kong parser, or the empty string when no parser is in ctx.
// Auxiliary files such as theme.toml live alongside the config file.
func configDirFrom(ctx context.Context) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	path, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok || path == "" {
		return ""
	}

	return filepath.Dir(path)
}

// compile builds an interface from document using a terminal toolkit themed
// from the configuration directory.
func compile(ctx context.Context, document string) (*lang.GUI, error) {
	theme, err := term.LoadTheme(configDirFrom(ctx))
	if err != nil {
		log.WarnContext(ctx, "theme file ignored", slog.Any("error", err))

		theme = term.DefaultTheme()
	}

	tk := term.New(
		term.WithTheme(theme),
		term.WithLogger(log.Default()),
	)

	c := lang.New(tk,
		lang.WithResolver(modules.Builtin()),
		lang.WithLogger(log.Default()),
	)

	return c.Compile(ctx, document)
}
