package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide logger. Level comes from LOG_LEVEL, defaulting
// to info; output is JSON on stdout.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if raw == "" {
		l.SetLevel(logrus.InfoLevel)
		return l
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		l.SetLevel(logrus.InfoLevel)
		return l
	}
	l.SetLevel(level)
	return l
}
