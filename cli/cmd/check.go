package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/teadoc/teadoc/toolkit"
)

// Check compiles a markup document without running it and reports the
// widget tree it would build.
type Check struct {
	Source string `arg:"" default:"-" help:"Markup document file or '-' for default stdin." name:"source"`

	Format string `default:"yaml" enum:"yaml,json" help:"Report output format" short:"o"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := resolveSource(ctx, c.Source)
	if err != nil {
		return err
	}

	gui, err := compile(ctx, doc)
	if err != nil {
		return err
	}

	report := describe(gui.Root())

	switch c.Format {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		fmt.Fprintln(os.Stdout, string(out))
	default:
		out, err := yaml.Marshal(report)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		fmt.Fprint(os.Stdout, string(out))
	}

	return nil
}

// node is one widget in a check report.
type node struct {
	Kind     string         `json:"kind"               yaml:"kind"`
	Options  map[string]any `json:"options,omitempty"  yaml:"options,omitempty"`
	Children []node         `json:"children,omitempty" yaml:"children,omitempty"`
}

// describe converts the widget tree rooted at w into report nodes.
func describe(w toolkit.Widget) node {
	n := node{Kind: w.Kind().String()}

	if lister, ok := w.(toolkit.OptionLister); ok {
		n.Options = printable(lister.Options())
	}

	if lister, ok := w.(toolkit.ChildLister); ok {
		for _, child := range lister.Children() {
			n.Children = append(n.Children, describe(child))
		}
	}

	return n
}

// printable rewrites option values that do not marshal cleanly, such as
// bound callbacks and variables, into short placeholders.
func printable(opts toolkit.Options) map[string]any {
	if len(opts) == 0 {
		return nil
	}

	out := make(map[string]any, len(opts))

	for name, value := range opts {
		switch value.(type) {
		case toolkit.Func:
			out[name] = "<function>"
		case toolkit.Variable:
			out[name] = "<variable>"
		default:
			out[name] = value
		}
	}

	return out
}
