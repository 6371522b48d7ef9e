package lang

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

// BenchmarkCompile benchmarks full document compilation against an inert
// toolkit.
func BenchmarkCompile(b *testing.B) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "single_root",
			doc:  `\root , title = Bench /`,
		},
		{
			name: "login_form",
			doc: `
				\root , title = Login , key = top
					\frame , key = form
						| label , text = Username
						| entry , key = username
					/ , layout = grid , row = 0 , column = 0
				/
			`,
		},
		{
			name: "wide_form",
			doc:  wideDocument(16),
		},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				c := New(newFakeToolkit())

				if _, err := c.Compile(b.Context(), tt.doc); err != nil {
					b.Fatalf("compile error: %v", err)
				}
			}
		})
	}
}

// BenchmarkScanner benchmarks tag scanning without compilation.
func BenchmarkScanner(b *testing.B) {
	doc := wideDocument(64)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		s, err := NewScanner(doc)
		if err != nil {
			b.Fatalf("scanner error: %v", err)
		}

		count := 0
		for range s.Tags() {
			count++
		}

		if count == 0 {
			b.Fatal("no tags scanned")
		}
	}
}

// BenchmarkFormat benchmarks canonical reformatting.
func BenchmarkFormat(b *testing.B) {
	doc := wideDocument(64)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := Format(io.Discard, doc); err != nil {
			b.Fatalf("format error: %v", err)
		}
	}
}

// wideDocument builds a root with n labeled rows.
func wideDocument(n int) string {
	var sb strings.Builder

	sb.WriteString(`\root , title = Wide , key = top `)

	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, `| label , text = row%d `, i)
	}

	sb.WriteString(`/`)

	return sb.String()
}
