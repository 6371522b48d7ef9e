package modules

import "github.com/teadoc/teadoc/lang"

// Predefined errors (sentinel values).
var (
	ErrNoInterface  = lang.NewError("function requires a bound interface")
	ErrBadArgument  = lang.NewError("invalid or missing argument")
	ErrUnknownName  = lang.NewError("unknown element or variable name")
	ErrUnsupported  = lang.NewError("operation not supported by the toolkit")
	ErrExprCompile  = lang.NewError("expression compilation failed")
	ErrExprEvaluate = lang.NewError("expression evaluation failed")
)
