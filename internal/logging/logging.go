// Package logging builds the leveled console logger shared by every view.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "todoboard"

// Options holds logger configuration.
type Options struct {
	Debug           bool
	ReportTimestamp bool
}

// New returns a logger writing to w. Debug enables debug level, otherwise
// only warnings and errors are printed.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.WarnLevel
	if opts.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
