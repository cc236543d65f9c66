// internal/logger/logger.go
package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New configures the process-wide zerolog logger and returns it. Verbose
// lowers the level to debug, quiet raises it to errors only; quiet takes
// precedence when both are set.
func New(verbose, quiet bool) zerolog.Logger {
	if verbose && quiet {
		fmt.Fprintln(os.Stderr, "warning: both -verbose and -quiet set, quiet takes precedence")
		verbose = false
	}

	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
	log.Logger = logger

	return logger
}
