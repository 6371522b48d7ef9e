package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/teadoc/teadoc/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler. Kong calls UnmarshalText while handling the
// --log-format flag, early enough to affect messages emitted during the
// rest of the parse.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler, the same way [logFormat] does.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over the arguments and applies logger flags
// before Kong begins parsing, so the logger is configured regardless of
// flag position. The logFormat and logLevel types already take effect
// through encoding.TextUnmarshaler during normal parsing; the early pass
// also catches the boolean flags, which bypass that interface.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		// Value flags may also consume the following argument.
		takesValue := name == "--log-level" || name == "--log-format"
		if takesValue && !assigned && i+1 < len(args) &&
			!strings.HasPrefix(args[i+1], "-") {
			i++
			value = args[i]
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(value))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(value))

		case "--log-pretty", "--no-log-pretty":
			f.Pretty = scanBool(name, value, assigned, "--log-pretty")
			log.Config(log.WithPretty(f.Pretty))

		case "--log-caller", "--no-log-caller":
			f.Caller = scanBool(name, value, assigned, "--log-caller")
			log.Config(log.WithCaller(f.Caller))
		}
	}
}

// scanBool interprets an optional "=value" on a boolean flag, inverting
// the result for the negated form.
func scanBool(name, value string, assigned bool, affirmative string) bool {
	on := true

	if assigned {
		if v, err := strconv.ParseBool(value); err == nil {
			on = v
		}
	}

	if name != affirmative {
		return !on
	}

	return on
}
