package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/teadoc/teadoc/lang"
)

// Fmt rewrites a markup document in canonical form on stdout.
type Fmt struct {
	Source string `arg:"" default:"-" help:"Markup document file or '-' for default stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := resolveSource(ctx, f.Source)
	if err != nil {
		return err
	}

	if err := lang.Format(os.Stdout, doc); err != nil {
		return lang.WrapError(err).
			With(slog.String("source", f.Source))
	}

	return nil
}
