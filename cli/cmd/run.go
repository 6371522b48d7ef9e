package cmd

import (
	"context"
	"log/slog"

	"github.com/teadoc/teadoc/log"
)

// Run compiles a markup document and runs the interface it describes.
type Run struct {
	Source string `arg:"" default:"-" help:"Markup document file or '-' for default stdin." name:"source"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := resolveSource(ctx, r.Source)
	if err != nil {
		return err
	}

	gui, err := compile(ctx, doc)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "starting interface",
		slog.String("source", r.Source),
	)

	return gui.Start(ctx)
}
