// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the stderr logger shared by the tools. Levels:
// quiet → warnings and errors only, verbose → debug, default → info.
func NewLogger(w io.Writer, prefix string, verbose, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: prefix})
	switch {
	case quiet:
		logger.SetLevel(log.WarnLevel)
	case verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
