// Package logging configures the process-wide logrus logger.
//
// The TUI owns stdout and stderr while it runs, so everything is written to
// a rotated file instead. Failures that the UI reports only generically
// (transport errors, malformed blobs) land here with full detail.
package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams configure the file logger.
type SetupParams struct {
	LogFileName string
	LogLevel    string
}

// Setup points the standard logrus logger at a rotated log file. An empty
// file name leaves logrus on stderr, which is only useful outside the TUI.
func Setup(params SetupParams) {
	logrus.SetLevel(Level(params.LogLevel))

	if params.LogFileName == "" {
		return
	}
	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	logrus.SetOutput(&lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false, // false -> use UTC
		Compress:   true,
	})
}

// Level maps a config string to a logrus level, defaulting to info.
func Level(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
