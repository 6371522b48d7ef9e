package modules

import "github.com/teadoc/teadoc/lang"

// Builtin returns a resolver over every built-in module.
func Builtin() lang.Resolver {
	return lang.NewResolver(App(), Calc())
}

// boundGUI splits the interface bound by a self-reference from the
// remaining arguments. Functions referenced without binding see no
// interface and their arguments unchanged.
func boundGUI(args []any) (*lang.GUI, []any) {
	if len(args) == 0 {
		return nil, nil
	}

	if g, ok := args[0].(*lang.GUI); ok {
		return g, args[1:]
	}

	if args[0] == nil {
		return nil, args[1:]
	}

	return nil, args
}

func stringArg(args []any, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}

	s, ok := args[i].(string)

	return s, ok
}
