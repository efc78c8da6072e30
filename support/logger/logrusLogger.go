package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// logrusLogger writes structured entries through logrus
type logrusLogger struct {
	entry *logrus.Entry
}

// ensure it implements Logger
var _ Logger = &logrusLogger{}

// MakeLogrusLogger is the factory method, level is any level name understood by logrus ("debug", "info", "error", ...)
// and defaults to info when empty
func MakeLogrusLogger(level string) (Logger, error) {
	l := logrus.New()
	if level != "" {
		lvl, e := logrus.ParseLevel(level)
		if e != nil {
			return nil, fmt.Errorf("invalid log level '%s': %s", level, e)
		}
		l.SetLevel(lvl)
	}
	return MakeLogrusLoggerFrom(l, nil), nil
}

// MakeLogrusLoggerFrom wraps an existing logrus logger, fields are attached to every entry
func MakeLogrusLoggerFrom(l *logrus.Logger, fields logrus.Fields) Logger {
	return &logrusLogger{
		entry: l.WithFields(fields),
	}
}

// Info impl
func (l *logrusLogger) Info(msg string) {
	l.entry.Info(msg)
}

// Infof impl
func (l *logrusLogger) Infof(msg string, args ...interface{}) {
	l.entry.Infof(msg, args...)
}

// Error impl
func (l *logrusLogger) Error(msg string) {
	l.entry.Error(msg)
}

// Errorf impl
func (l *logrusLogger) Errorf(msg string, args ...interface{}) {
	l.entry.Errorf(msg, args...)
}
