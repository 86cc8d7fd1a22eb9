package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog with the small surface the picker packages need.
// A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Debug writes a debug-level entry. kv is a flat list of key/value pairs.
func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	withPairs(l.base.Debug(), kv).Msg(msg)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	withPairs(l.base.Info(), kv).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	withPairs(l.base.Warn(), kv).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withPairs(event, kv).Msg(msg)
}

func withPairs(event *zerolog.Event, kv []any) *zerolog.Event {
	if event == nil || len(kv) == 0 {
		return event
	}
	if len(kv)%2 != 0 {
		kv = append(kv, "(missing)")
	}
	return event.Fields(kv)
}
