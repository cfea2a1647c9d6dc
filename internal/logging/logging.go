// Package logging configures structured logging and user-facing output
// for rabbitconf.
//
// Structured logs go through zerolog and are meant for debugging; they
// are written to stderr so they never mix with command output. User
// output is printed with status indicators:
//
//	logging.Infof("Checking %s...", path)
//	logging.Successf("Set %s", key)
//	logging.Warnf("Unknown key %s", key)
//	logging.Errorf("Cannot read %s: %v", path, err)
//
// Infof and Successf write to stdout; Warnf and Errorf write to stderr.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. verbose enables debug
// level and takes precedence over the RABBITCONF_LOG environment
// variable; jsonLogs switches from the console format to JSON lines.
// A nil writer means stderr.
func Setup(verbose, jsonLogs bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	if jsonLogs {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	}

	zerolog.SetGlobalLevel(level(verbose))
}

// level resolves the log level from the verbose flag and environment.
func level(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	switch os.Getenv("RABBITCONF_LOG") {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
