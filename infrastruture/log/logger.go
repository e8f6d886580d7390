// Package log provides the prefixed, coloured loggers used across the service.
package log

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"

	"github.com/beka-birhanu/vinom-levels/config"
)

// Logger writes leveled lines tagged with a component name, e.g.
// "[LEVELS] [INFO] generated 5 levels".
type Logger struct {
	out *stdlog.Logger
}

// New returns a logger for the component named prefix, coloured with color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is empty")
	}
	if w == nil {
		return nil, errors.New("logger writer is nil")
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{
		out: stdlog.New(w, tag, stdlog.LstdFlags|stdlog.Lmsgprefix),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Printf("%s[WARN]%s %s", config.LogWarnColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}
