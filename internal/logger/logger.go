package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the application logger instance
var Logger = zerolog.Nop()

// Init initializes the logger with the given configuration. Logs go to stderr
// so that command output on stdout stays clean.
func Init(level, format string) zerolog.Logger {
	Logger = New(os.Stderr, level, format)

	// Set the global logger
	log.Logger = Logger
	return Logger
}

// New builds a logger writing to w without touching the global one.
func New(w io.Writer, level, format string) zerolog.Logger {
	var l zerolog.Logger
	if strings.ToLower(format) == "json" {
		l = zerolog.New(w).With().
			Timestamp().
			Logger()
	} else {
		// Console format with colors
		output := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    w != os.Stderr,
		}
		l = zerolog.New(output).With().
			Timestamp().
			Logger()
	}
	return l.Level(parseLogLevel(level))
}

// parseLogLevel parses string log level to zerolog level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// GetLogger returns the configured logger instance
func GetLogger() zerolog.Logger {
	return Logger
}
