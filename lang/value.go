package lang

import "github.com/teadoc/teadoc/toolkit"

// Type discriminates the representations a literal can evaluate to.
type Type int

// Value representations, in evaluation precedence order.
const (
	TypeString Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeList
	TypeFunc
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeList:
		return "list"
	case TypeFunc:
		return "func"
	}

	return "unknown"
}

// Value is one evaluated literal. Exactly one field besides Type is
// meaningful, selected by Type.
type Value struct {
	Type  Type
	Bool  bool
	Int   int64
	Float float64
	Str   string
	List  []Value
	Func  toolkit.Func
}

func NewString(s string) Value { return Value{Type: TypeString, Str: s} }
func NewBool(b bool) Value     { return Value{Type: TypeBool, Bool: b} }
func NewInt(i int64) Value     { return Value{Type: TypeInt, Int: i} }
func NewFloat(f float64) Value { return Value{Type: TypeFloat, Float: f} }
func NewList(l []Value) Value  { return Value{Type: TypeList, List: l} }

func NewFunc(f toolkit.Func) Value { return Value{Type: TypeFunc, Func: f} }

// Interface unwraps the value into a plain Go representation suitable for
// widget options and module function arguments. Lists unwrap recursively
// into []any.
func (v Value) Interface() any {
	switch v.Type {
	case TypeString:
		return v.Str
	case TypeBool:
		return v.Bool
	case TypeInt:
		return v.Int
	case TypeFloat:
		return v.Float
	case TypeList:
		list := make([]any, len(v.List))
		for i, e := range v.List {
			list[i] = e.Interface()
		}

		return list
	case TypeFunc:
		return v.Func
	}

	return nil
}
