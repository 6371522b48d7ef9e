package lang

import (
	"context"
	"strconv"
	"strings"

	"github.com/teadoc/teadoc/toolkit"
)

// evaluate resolves one literal into a typed value. Evaluation is ordered:
// self-references and references resolve to functions, braced literals to
// lists, the exact words True and False to booleans, numeric text to an
// integer or float, and everything else to a string with one layer of
// double quotes removed.
func (c *Compiler) evaluate(literal string) (Value, error) {
	switch {
	case strings.HasPrefix(literal, selfReference):
		fn, err := c.dereference(literal[len(selfReference):])
		if err != nil {
			return Value{}, err
		}

		return NewFunc(c.bindGUI(fn)), nil

	case strings.HasPrefix(literal, reference):
		fn, err := c.dereference(literal[len(reference):])
		if err != nil {
			return Value{}, err
		}

		return NewFunc(fn), nil

	case isListBody(literal):
		return c.evaluateList(literal[1 : len(literal)-1])

	case literal == trueLiteral:
		return NewBool(true), nil

	case literal == falseLiteral:
		return NewBool(false), nil

	case looksNumeric(literal):
		if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return NewInt(i), nil
		}

		if f, err := strconv.ParseFloat(literal, 64); err == nil {
			return NewFloat(f), nil
		}
	}

	return NewString(unquote(literal)), nil
}

// evaluateList evaluates each colon-separated element of a list body.
// An empty body yields a single empty string element.
func (c *Compiler) evaluateList(body string) (Value, error) {
	parts := strings.Split(body, listSeparator)
	list := make([]Value, len(parts))

	for i, part := range parts {
		v, err := c.evaluate(strings.TrimSpace(part))
		if err != nil {
			return Value{}, err
		}

		list[i] = v
	}

	return NewList(list), nil
}

// bindGUI wraps a function so that, when invoked, it receives the compiled
// interface as its first argument. The interface is read from the promise
// at call time, so functions bound before the root element exists still
// see the finished interface.
func (c *Compiler) bindGUI(fn toolkit.Func) toolkit.Func {
	promise := c.promise

	return func(ctx context.Context, args []any, opts toolkit.Options) (any, error) {
		bound := make([]any, 0, len(args)+1)

		if promise != nil && promise.gui != nil {
			bound = append(bound, promise.gui)
		} else {
			bound = append(bound, nil)
		}

		return fn(ctx, append(bound, args...), opts)
	}
}

// isListBody reports whether a literal is delimited as a list.
func isListBody(s string) bool {
	return len(s) >= 2 && s[0] == listOpen && s[len(s)-1] == listClose
}

// looksNumeric reports whether a literal is shaped like a number: an
// optional sign, at least one digit, and at most one decimal point. Words
// that merely contain digits stay strings.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}

	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	digits, dots := 0, 0

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}

// unquote removes exactly one layer of surrounding double quotes, leaving
// any nested quotes intact.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
