// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("compiled document", slog.String("path", path))
//	logger.Error("compilation failed", slog.Any("error", err))
//
// A package-level default logger writing to standard error is also
// available through the top-level functions ([Info], [Error], and friends)
// and is reconfigured with [Config].
//
// # Configuration
//
// Configure a logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Adding Attributes
//
// Attributes can be added to the logger to be included in all subsequent
// log messages using the [Logger.With] method:
//
//	logger = logger.With(slog.String("component", "compiler"))
//	logger.Info("document opened") // includes component=compiler
//
// # Context-Aware Logging
//
// Each logging level has both a context-aware and context-unaware variant.
// Context-unaware functions internally call their context-aware
// counterparts using [DefaultContextProvider], which returns [context.TODO]
// by default.
//
// # Supported Levels
//
// The package supports five log levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the configured
// level are discarded. Trace sits below debug and is used for per-tag
// records during compilation.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and
// [FormatJSON]. Format is set at logger creation time using functional
// options. Both have pretty variants, enabled by default, which colorize
// output on capable terminals.
package log
