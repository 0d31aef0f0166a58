// Package logger configures the global zerolog logger used for
// diagnostics. Console output goes to stderr so command output on
// stdout stays machine-readable.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Debug reports whether debug logging is enabled.
var Debug bool

func init() {
	Set(false)
}

// Set configures the global log level and the console writer.
func Set(debug bool) {
	Debug = debug
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
}

// SetWriter redirects the global logger, used by tests to capture output.
func SetWriter(w io.Writer) {
	log.Logger = log.Output(w)
}
