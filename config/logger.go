package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// InitLogger configures the shared JSON logger at the given level.
// Unknown levels fall back to info.
func InitLogger(level string) *logrus.Logger {
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	return Log
}
