// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes every underlying closer when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" means stdin; gzip input is detected
// by magic number (1F 8B) or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
}
