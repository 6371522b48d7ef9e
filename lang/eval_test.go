package lang

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/teadoc/teadoc/toolkit"
)

func evalCompiler(t *testing.T) *Compiler {
	t.Helper()

	return New(newFakeToolkit())
}

func TestEvaluate_Literals(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    Value
	}{
		{"true word", "True", NewBool(true)},
		{"false word", "False", NewBool(false)},
		{"lowercase true is text", "true", NewString("true")},
		{"uppercase FALSE is text", "FALSE", NewString("FALSE")},
		{"integer", "42", NewInt(42)},
		{"negative integer", "-7", NewInt(-7)},
		{"signed integer", "+5", NewInt(5)},
		{"float", "3.14", NewFloat(3.14)},
		{"negative float", "-0.5", NewFloat(-0.5)},
		{"bare fraction", ".5", NewFloat(0.5)},
		{"two dots is text", "1.2.3", NewString("1.2.3")},
		{"digits with suffix is text", "12px", NewString("12px")},
		{"lone sign is text", "-", NewString("-")},
		{"empty", "", NewString("")},
		{"plain text", "hello world", NewString("hello world")},
		{"quoted text", `"hello"`, NewString("hello")},
		{"quotes preserve numeric text", `"42"`, NewString("42")},
		{"only one quote layer removed", `""hi""`, NewString(`"hi"`)},
		{"lone quote is text", `"`, NewString(`"`)},
		{"unbalanced quote is text", `"abc`, NewString(`"abc`)},
	}

	c := evalCompiler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.evaluate(tt.literal)
			if err != nil {
				t.Fatalf("evaluate(%q): %v", tt.literal, err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("evaluate(%q) = %+v, want %+v", tt.literal, got, tt.want)
			}
		})
	}
}

func TestEvaluate_BigIntegerFallsToFloat(t *testing.T) {
	c := evalCompiler(t)

	got, err := c.evaluate("9999999999999999999")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if got.Type != TypeFloat {
		t.Errorf("Type = %s, want float", got.Type)
	}
}

func TestEvaluate_Lists(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    []any
	}{
		{
			name:    "strings",
			literal: "{a:b:c}",
			want:    []any{"a", "b", "c"},
		},
		{
			name:    "mixed types",
			literal: "{1:2.5:True:x}",
			want:    []any{int64(1), 2.5, true, "x"},
		},
		{
			name:    "elements trimmed",
			literal: "{ a : b }",
			want:    []any{"a", "b"},
		},
		{
			name:    "empty body is one empty string",
			literal: "{}",
			want:    []any{""},
		},
		{
			name:    "nested braces split flat",
			literal: "{a:{b:c}}",
			want:    []any{"a", "{b", "c}"},
		},
	}

	c := evalCompiler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.evaluate(tt.literal)
			if err != nil {
				t.Fatalf("evaluate(%q): %v", tt.literal, err)
			}

			if got.Type != TypeList {
				t.Fatalf("Type = %s, want list", got.Type)
			}

			if !reflect.DeepEqual(got.Interface(), tt.want) {
				t.Errorf("evaluate(%q) = %v, want %v", tt.literal, got.Interface(), tt.want)
			}
		})
	}
}

func TestEvaluate_Reference(t *testing.T) {
	called := 0

	c := evalCompiler(t)
	c.imports["app"] = NewModule("app", map[string]toolkit.Func{
		"quit": func(context.Context, []any, toolkit.Options) (any, error) {
			called++

			return nil, nil
		},
	})

	v, err := c.evaluate("?app.quit")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if v.Type != TypeFunc {
		t.Fatalf("Type = %s, want func", v.Type)
	}

	if _, err := v.Func(context.Background(), nil, nil); err != nil {
		t.Fatalf("invoke: %v", err)
	}

	if called != 1 {
		t.Errorf("called = %d, want 1", called)
	}
}

func TestEvaluate_SelfReference(t *testing.T) {
	var got []any

	c := evalCompiler(t)
	c.promise = &guiPromise{}
	c.imports["app"] = NewModule("app", map[string]toolkit.Func{
		"stop": func(_ context.Context, args []any, _ toolkit.Options) (any, error) {
			got = args

			return nil, nil
		},
	})

	v, err := c.evaluate("??app.stop")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	// Before the root exists the bound interface is nil.
	if _, err := v.Func(context.Background(), []any{"x"}, nil); err != nil {
		t.Fatalf("invoke: %v", err)
	}

	if len(got) != 2 || got[0] != nil || got[1] != "x" {
		t.Fatalf("args = %v, want [nil x]", got)
	}

	// Once the promise is fulfilled the same function sees the interface.
	gui := newGUI(c.tk, nil)
	c.promise.gui = gui

	if _, err := v.Func(context.Background(), nil, nil); err != nil {
		t.Fatalf("invoke: %v", err)
	}

	if len(got) != 1 || got[0] != gui {
		t.Fatalf("args = %v, want bound interface", got)
	}
}

func TestEvaluate_ReferenceErrors(t *testing.T) {
	c := evalCompiler(t)
	c.imports["app"] = NewModule("app", map[string]toolkit.Func{
		"quit": func(context.Context, []any, toolkit.Options) (any, error) {
			return nil, nil
		},
	})

	tests := []struct {
		name    string
		literal string
		want    error
	}{
		{"unknown function", "?app.nope", ErrUnknownFunction},
		{"unknown module", "?gone.fn", ErrUnknownModule},
		{"missing dot", "?appquit", ErrUnknownFunction},
		{"empty function", "?app.", ErrUnknownFunction},
		{"empty module", "?.quit", ErrUnknownFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.evaluate(tt.literal)
			if !errors.Is(err, tt.want) {
				t.Errorf("evaluate(%q) = %v, want %v", tt.literal, err, tt.want)
			}
		})
	}
}

func TestLooksNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"42", true},
		{"-7", true},
		{"+3", true},
		{"3.14", true},
		{".5", true},
		{"5.", true},
		{"", false},
		{"-", false},
		{"+", false},
		{".", false},
		{"1.2.3", false},
		{"12px", false},
		{"e9", false},
		{"0x1f", false},
	}

	for _, tt := range tests {
		if got := looksNumeric(tt.input); got != tt.want {
			t.Errorf("looksNumeric(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValue_Interface(t *testing.T) {
	list := NewList([]Value{NewInt(1), NewList([]Value{NewString("a")})})

	got, ok := list.Interface().([]any)
	if !ok {
		t.Fatalf("Interface() = %T, want []any", list.Interface())
	}

	if got[0] != int64(1) {
		t.Errorf("got[0] = %v, want 1", got[0])
	}

	inner, ok := got[1].([]any)
	if !ok || len(inner) != 1 || inner[0] != "a" {
		t.Errorf("got[1] = %v, want [a]", got[1])
	}
}
