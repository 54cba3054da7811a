package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	writer  io.Writer
	level   slog.Level
	json    bool
	appName string
}

// Option configures the logger factory.
type Option func(*options)

// WithDevelopment configures human-readable text output at debug level.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.level = slog.LevelDebug
		o.json = false
	}
}

// WithProduction configures JSON output at info level.
func WithProduction(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.level = slog.LevelInfo
		o.json = true
	}
}

// WithLevel overrides the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter forces JSON output regardless of preset.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithWriter redirects output, mainly for tests.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// New creates a slog.Logger. Without options it behaves like the
// development preset without an app attribute.
func New(opts ...Option) *slog.Logger {
	o := &options{
		writer: os.Stdout,
		level:  slog.LevelDebug,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(o.writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(o.writer, handlerOpts)
	}

	log := slog.New(handler)
	if o.appName != "" {
		log = log.With(slog.String("app", o.appName))
	}
	return log
}
