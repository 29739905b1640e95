package logging

import (
	"context"

	charm "github.com/charmbracelet/log"
)

// CharmLogger adapts charmbracelet/log to the Logger interface. It is the
// implementation the interactive CLI uses, for readable colored output.
type CharmLogger struct {
	l *charm.Logger
}

func NewCharmLogger(l *charm.Logger) *CharmLogger {
	return &CharmLogger{l: l}
}

func (c *CharmLogger) Debug(_ context.Context, msg string, args ...any) {
	c.l.Debug(msg, args...)
}

func (c *CharmLogger) Info(_ context.Context, msg string, args ...any) {
	c.l.Info(msg, args...)
}

func (c *CharmLogger) Warn(_ context.Context, msg string, args ...any) {
	c.l.Warn(msg, args...)
}

func (c *CharmLogger) Error(_ context.Context, msg string, args ...any) {
	c.l.Error(msg, args...)
}

func (c *CharmLogger) With(args ...any) Logger {
	return &CharmLogger{l: c.l.With(args...)}
}
