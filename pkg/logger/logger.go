package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus so the rest of the application does not depend on it
// directly.
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a configured logger. Format is "json" or "text".
func NewLogger(level, format string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "text" {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{l}
}
