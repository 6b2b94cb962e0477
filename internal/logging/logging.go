// Package logging sets up the structured logger shared by the server, the CLI
// and the services.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger writing text lines to stdout at the given level.
// Unknown level names fall back to info.
func New(level string) *logrus.Logger {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput is New with an explicit destination, mainly for tests.
func NewWithOutput(level string, out io.Writer) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return NewWithOutput("panic", io.Discard)
}
