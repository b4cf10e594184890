package logging

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
var Log = logrus.New()

// SetLevel sets the log level from a config or flag string
func SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "", "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("bad log level %q", level)
	}
	return nil
}

// Component returns a logger entry tagged with a component name
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
