// Package cli implements the pkgconf command-line interface.
//
// Commands resolve compiler/linker flags for named modules against the
// configured .pc search path: cflags, libs, static-libs, modversion, and
// list-all. --verbose (-v) enables debug-level logging via
// github.com/charmbracelet/log.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

var logger *log.Logger

func setupLogger(verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger = newLogger(os.Stderr, level)
}
