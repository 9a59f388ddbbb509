package log

import (
	"log/slog"
	"os"
)

// Logger is a slog.Logger whose records all carry the component that
// produced them. The tag is attached once at construction instead of on
// every call.
type Logger struct {
	*slog.Logger
	base *slog.Logger
}

// Config controls the handler, level, and component tag of a Logger.
type Config struct {
	Level     slog.Level
	Component string
	Handler   slog.Handler
}

// New builds a component-tagged logger. When no handler is given, records
// go to stdout as text at the configured level.
func New(cfg Config) *Logger {
	handler := cfg.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	}
	base := slog.New(handler)
	return &Logger{
		Logger: base.With(FieldComponent, cfg.Component),
		base:   base,
	}
}

// SetDefault routes package-level slog calls through l's handler. The
// component tag is not applied there: call sites that log through the
// default logger attach their own component field.
func SetDefault(l *Logger) {
	slog.SetDefault(l.base)
}
