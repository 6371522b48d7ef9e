package lang

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzScanner tests the scanner with random inputs to find edge cases.
func FuzzScanner(f *testing.F) {
	// Seed corpus with known valid inputs
	f.Add(`\root/`)
	f.Add(`\root , title = Login , key = top /`)
	f.Add(`|label , text = hi`)
	f.Add(`$import calc`)
	f.Add(`$calc.eval , 1 + 2`)
	f.Add(`\root \frame |entry , key = user / /`)
	f.Add(`, stray = argument`)
	f.Add(`junk before \root/`)
	f.Add(`{a:b:c}`)
	f.Add(`??app.quit`)
	f.Add(``)
	f.Add(`///`)

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		// Scanner should not panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("scanner panicked on input %q: %v", input, r)
			}
		}()

		s, err := NewScanner(input)
		if err != nil {
			return
		}

		for tag := range s.Tags() {
			// Payloads never carry a marker; chunks split at every one
			if strings.ContainsAny(tag.Payload, markers) {
				t.Errorf("payload %q contains a marker rune", tag.Payload)
			}

			// Payloads are already trimmed
			if trimmed := strings.TrimSpace(tag.Payload); trimmed != tag.Payload {
				t.Errorf("payload %q is not trimmed", tag.Payload)
			}

			if tag.String() == "" {
				t.Error("scanned tag renders empty")
			}
		}
	})
}

// FuzzFormat tests canonical formatting with random inputs to find edge
// cases.
func FuzzFormat(f *testing.F) {
	// Seed corpus with known valid inputs
	f.Add(`\root , title = Sample , key = top |label , text = hi /`)
	f.Add(`$import calc \root $calc.eval , 1 + 2 /`)
	f.Add(`\root \frame |entry / , layout = grid , row = 0 /`)
	f.Add(`|label,text=hi`)
	f.Add(`no markers at all`)
	f.Add(`//`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		// Formatting should not panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("format panicked on input %q: %v", input, r)
			}
		}()

		var once strings.Builder

		// It's OK for formatting to fail, but it shouldn't panic
		if err := Format(&once, input); err != nil {
			return
		}

		// Canonical output must reformat to itself
		var twice strings.Builder

		if err := Format(&twice, once.String()); err != nil {
			t.Errorf("reformatting canonical output failed: %v", err)

			return
		}

		if once.String() != twice.String() {
			t.Errorf("formatting is not idempotent:\nonce:\n%s\ntwice:\n%s",
				once.String(), twice.String())
		}
	})
}

// FuzzCompile tests compilation with random inputs to find edge cases.
func FuzzCompile(f *testing.F) {
	// Seed corpus with known valid documents
	f.Add(`\root , title = Sample , key = top /`)
	f.Add(`\root |label , text = hi /`)
	f.Add(`\root \frame |entry , key = user / , layout = pack /`)
	f.Add(`\root |radio , var_key = choice , value = 1 /`)
	f.Add(`\root , geometry = {640:480} /`)
	f.Add(`$import calc \root/`)
	f.Add(`, argument without element`)
	f.Add(`\bogus/`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		// Compilation should not panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("compile panicked on input %q: %v", input, r)
			}
		}()

		c := New(newFakeToolkit())

		gui, err := c.Compile(t.Context(), input)

		// It's OK for compilation to fail, but it shouldn't panic
		// and a success must produce a usable interface
		if err != nil {
			return
		}

		if gui == nil {
			t.Error("successful compile returned nil interface")

			return
		}

		if gui.Root() == nil {
			t.Error("successful compile returned interface without a root")
		}
	})
}
