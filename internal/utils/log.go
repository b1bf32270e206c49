// Package utils
package utils

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger: text output on the
// console plus a JSON file hook appending to logFile. The file content is
// diagnostic only.
func SetupLogging(logFile string, debug bool) {
	logger := log.StandardLogger()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	if logFile == "" {
		return
	}

	logger.AddHook(lfshook.NewHook(
		lfshook.PathMap{
			log.DebugLevel: logFile,
			log.InfoLevel:  logFile,
			log.WarnLevel:  logFile,
			log.ErrorLevel: logFile,
			log.FatalLevel: logFile,
		},
		&log.JSONFormatter{},
	))
}
