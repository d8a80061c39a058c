// logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLevel names the environment variable read for the initial level.
const EnvLevel = "XRCFORM_LOG_LEVEL"

var logger = newLogger(os.Stderr, os.Getenv(EnvLevel))

func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger().
		Level(ParseLevel(level))
}

// L returns the process-wide logger.
func L() *zerolog.Logger { return &logger }

// SetLogger installs l as the process-wide logger.
func SetLogger(l zerolog.Logger) { logger = l }

// SetOutput keeps the current level and writes console output to w.
func SetOutput(w io.Writer) {
	logger = newLogger(w, logger.GetLevel().String())
}

func SetLevel(level string) { logger = logger.Level(ParseLevel(level)) }

// ParseLevel maps a level name to zerolog. Unknown and empty names mean
// info; "off" disables logging.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
