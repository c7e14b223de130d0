package fasta

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func scanAll(t *testing.T, in string) []Record {
	t.Helper()
	var recs []Record
	if err := ScanCtx(context.Background(), strings.NewReader(in), func(r Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return recs
}

func TestScanBasic(t *testing.T) {
	recs := scanAll(t, ">seq1 desc here\nACGT\nACGT\n>seq2\nAC\n")
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID() != "seq1" || recs[0].Length != 8 {
		t.Errorf("rec0 = %q len %d", recs[0].ID(), recs[0].Length)
	}
	if recs[1].ID() != "seq2" || recs[1].Length != 2 {
		t.Errorf("rec1 = %q len %d", recs[1].ID(), recs[1].Length)
	}
}

func TestScanLastRecordWithoutTrailingNewline(t *testing.T) {
	recs := scanAll(t, ">a\nACGT\n>b\nGG")
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[1].Length != 2 {
		t.Errorf("final record length = %d, want 2", recs[1].Length)
	}
}

func TestScanEmptyBodyRecord(t *testing.T) {
	recs := scanAll(t, ">empty\n>full\nACGT\n")
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].Length != 0 || len(recs[0].Body) != 0 {
		t.Errorf("empty record parsed as %+v", recs[0])
	}
}

func TestScanLengthIndependentOfWrapping(t *testing.T) {
	a := scanAll(t, ">x\nACGTACGTAC\n")
	b := scanAll(t, ">x\nACG\nTACG\nTAC\n")
	if a[0].Length != 10 || b[0].Length != 10 {
		t.Fatalf("lengths %d / %d, want 10 / 10", a[0].Length, b[0].Length)
	}
	if a[0].Seq() != b[0].Seq() {
		t.Errorf("logical sequences differ: %q vs %q", a[0].Seq(), b[0].Seq())
	}
}

func TestScanTrailingWhitespaceNotCounted(t *testing.T) {
	recs := scanAll(t, ">x\nACGT  \n")
	if recs[0].Length != 4 {
		t.Errorf("length = %d, want 4 (trailing spaces excluded)", recs[0].Length)
	}
}

func TestScanVerbatimReemission(t *testing.T) {
	in := ">id some description\nACG\nTACG\n\nTAC\n"
	recs := scanAll(t, in)
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
	var sb strings.Builder
	if _, err := recs[0].WriteTo(&sb); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != in {
		t.Errorf("re-emitted record differs:\nin:  %q\nout: %q", in, sb.String())
	}
}

func TestScanBlankLinesBeforeFirstHeaderOK(t *testing.T) {
	recs := scanAll(t, "\n\n>x\nAC\n")
	if len(recs) != 1 || recs[0].Length != 2 {
		t.Fatalf("unexpected parse %+v", recs)
	}
}

func TestScanMalformedInput(t *testing.T) {
	err := ScanCtx(context.Background(), strings.NewReader("\nACGT\n>x\nAC\n"), func(Record) error { return nil })
	var me *MalformedInputError
	if !errors.As(err, &me) {
		t.Fatalf("want MalformedInputError, got %v", err)
	}
	if me.Line != 2 {
		t.Errorf("error line = %d, want 2", me.Line)
	}
}

func TestScanEmptyInput(t *testing.T) {
	if recs := scanAll(t, ""); len(recs) != 0 {
		t.Fatalf("empty input produced %d records", len(recs))
	}
}

func TestScanCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ScanCtx(ctx, strings.NewReader(">a\nAC\n>b\nGG\n"), func(Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestScanEmitErrorStops(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := ScanCtx(context.Background(), strings.NewReader(">a\nAC\n>b\nGG\n"), func(Record) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}
