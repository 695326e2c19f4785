package physics

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is the minimal leveled logging surface phys2d uses for
// infrequent, non-fatal diagnostics (a constraint or rope left out of a
// tick because it lacks a live dynamic owner or particle). None of the solver's inner
// per-substep loops log.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type slogLogger struct {
	l *slog.Logger
}

// NewDefaultLogger returns a Logger writing leveled text lines to stderr.
func NewDefaultLogger() Logger {
	return slogLogger{l: slog.New(slog.NewTextHandler(os.Stderr, nil))}
}

func (s slogLogger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

func (s slogLogger) Warnf(format string, args ...any) {
	s.l.Warn(fmt.Sprintf(format, args...))
}

// noopLogger discards everything; used as World's default so library
// consumers don't get stderr spam unless they opt in.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}
