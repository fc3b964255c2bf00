// Package logger builds the shared logrus logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to stderr at the given level name.
// Unknown names fall back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
