// internal/writers/record_test.go
package writers

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"fakit-core/fasta"
)

func rec(header string, body ...string) fasta.Record {
	n := 0
	for _, l := range body {
		n += len(strings.TrimSpace(l))
	}
	return fasta.Record{Header: header, Body: body, Length: n}
}

func TestRecordWriterVerbatim(t *testing.T) {
	var buf bytes.Buffer
	in, errc := StartRecordWriter(&buf, 4)

	in <- rec(">a desc", "ACGT", "AC")
	in <- rec(">b", "GG")
	close(in)

	if err := <-errc; err != nil {
		t.Fatal(err)
	}
	want := ">a desc\nACGT\nAC\n>b\nGG\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

type failAfter struct {
	n   int
	err error
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	f.n--
	return len(p), nil
}

func TestRecordWriterStickyErrorAndDrain(t *testing.T) {
	boom := errors.New("boom")
	w := &failAfter{n: 0, err: boom}
	in, errc := StartRecordWriter(w, 2)

	for i := 0; i < 10; i++ {
		in <- rec(">x", "ACGT")
	}
	close(in)

	if err := <-errc; !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) {
		t.Error("EPIPE should count as broken pipe")
	}
	if IsBrokenPipe(errors.New("other")) {
		t.Error("arbitrary error should not count")
	}
	if IsBrokenPipe(nil) {
		t.Error("nil should not count")
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary("yaml", &buf, nil); err == nil || !strings.Contains(err.Error(), "yaml") {
		t.Fatalf("WriteSummary err = %v", err)
	}
	if err := WritePerRecord("xml", &buf, nil); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("WritePerRecord err = %v", err)
	}
}
