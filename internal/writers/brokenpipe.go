package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error means the downstream consumer
// (a `head`, usually) closed the pipe early. Treated as success.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
