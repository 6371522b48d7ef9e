package modules

import (
	"context"
	"log/slog"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/teadoc/teadoc/lang"
	"github.com/teadoc/teadoc/toolkit"
)

// Calc returns the calc module. Its single function, eval, compiles its
// first argument as an expr-lang expression and returns the result.
//
// Expressions reach the interface through two bound functions: get(name)
// reads a variable or widget text, set(name, value) writes one and
// returns the value. Both require the eval reference to be a
// self-reference. The host environment is also in scope: hostname, user,
// cwd, env(key), file and path helpers, and mung for PATH-style lists.
func Calc() lang.Module {
	c := &calculator{programs: make(map[string]*vm.Program)}

	return lang.NewModule("calc", map[string]toolkit.Func{
		"eval": c.eval,
	})
}

// calculator caches compiled programs by source text, so a callback bound
// to a button pays compilation on its first press only.
type calculator struct {
	mu       sync.Mutex
	programs map[string]*vm.Program
}

func (c *calculator) eval(_ context.Context, args []any, _ toolkit.Options) (any, error) {
	gui, rest := boundGUI(args)

	src, ok := stringArg(rest, 0)
	if !ok {
		return nil, ErrBadArgument.With(slog.String("function", "eval"))
	}

	program, err := c.compile(src)
	if err != nil {
		return nil, err
	}

	out, err := expr.Run(program, exprEnv(gui))
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("source", src))
	}

	return out, nil
}

func (c *calculator) compile(src string) (*vm.Program, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.programs[src]; ok {
		return p, nil
	}

	p, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).With(slog.String("source", src))
	}

	c.programs[src] = p

	return p, nil
}

// exprEnv merges the host environment with accessors bound to the running
// interface.
func exprEnv(gui *lang.GUI) map[string]any {
	env := cloneHostEnv()

	env["get"] = func(name string) (any, error) {
		if gui == nil {
			return nil, ErrNoInterface
		}

		return guiValue(gui, name)
	}

	env["set"] = func(name string, value any) (any, error) {
		if gui == nil {
			return nil, ErrNoInterface
		}

		return value, setGUIValue(gui, name, value)
	}

	return env
}
