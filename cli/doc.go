// Package cli contains the command line interface for teadoc.
//
// # Usage
//
// The CLI compiles document markup into terminal interfaces:
//
//	teadoc run form.ted
//	teadoc check --format json form.ted
//	teadoc fmt form.ted
//	teadoc init
//
// Global flags configure logging and, when built with the pprof tag,
// profiling:
//
//	teadoc --log-level=debug --log-format=text run form.ted
//
// # Configuration
//
// Flag defaults may be supplied by a configuration file in the user config
// directory (for example ~/.config/teadoc/config.yaml on Linux). Both YAML
// and JSON files are recognized:
//
//	log-level: debug
//	log-format: text
//	log-pretty: false
//
// Flag names may use hyphens or underscores in the file. Values given on
// the command line override the file.
//
// The same directory may hold a theme.toml recoloring the interface; see
// the term package for the color keys.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
