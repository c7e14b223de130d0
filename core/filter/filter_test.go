package filter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fakit-core/fasta"
)

func run(t *testing.T, o Options, in string) (string, Stats) {
	t.Helper()
	var out strings.Builder
	st, err := Run(context.Background(), o, strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String(), st
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		o    Options
		ok   bool
	}{
		{"min only", Options{MinLen: 1}, true},
		{"min and max", Options{MinLen: 5, MaxLen: 10}, true},
		{"max equals min", Options{MinLen: 5, MaxLen: 5}, true},
		{"zero min", Options{}, false},
		{"negative min", Options{MinLen: -3}, false},
		{"max below min", Options{MinLen: 10, MaxLen: 5}, false},
	}
	for _, c := range cases {
		err := c.o.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok {
			var te *InvalidThresholdError
			if !errors.As(err, &te) {
				t.Errorf("%s: want InvalidThresholdError, got %v", c.name, err)
			}
		}
	}
}

func TestThresholdCorrectness(t *testing.T) {
	in := ">short\nAC\n>exact\nACGTA\n>long\nACGTACGTACGT\n"

	out, st := run(t, Options{MinLen: 5}, in)
	if st.Scanned != 3 || st.Kept != 2 {
		t.Fatalf("stats %+v", st)
	}
	if strings.Contains(out, ">short") || !strings.Contains(out, ">exact") || !strings.Contains(out, ">long") {
		t.Errorf("min bound wrong:\n%s", out)
	}

	out, st = run(t, Options{MinLen: 5, MaxLen: 5}, in)
	if st.Kept != 1 || !strings.Contains(out, ">exact") {
		t.Errorf("max bound wrong (%+v):\n%s", st, out)
	}
}

func TestWrappedRecordKept(t *testing.T) {
	out, _ := run(t, Options{MinLen: 5}, ">seq1\nACGT\nACGT\n>seq2\nAC\n")
	if out != ">seq1\nACGT\nACGT\n" {
		t.Fatalf("got %q", out)
	}
}

func TestLastRecordEvaluated(t *testing.T) {
	// no trailing newline after the qualifying final record
	out, st := run(t, Options{MinLen: 3}, ">a\nAC\n>b\nACGT")
	if st.Kept != 1 || !strings.Contains(out, ">b") {
		t.Fatalf("final record dropped: %+v %q", st, out)
	}
}

func TestEmptyRecordExcluded(t *testing.T) {
	_, st := run(t, Options{MinLen: 1}, ">empty\n>full\nACGT\n")
	if st.Scanned != 2 || st.Kept != 1 {
		t.Fatalf("stats %+v", st)
	}
}

func TestOrderPreserved(t *testing.T) {
	out, _ := run(t, Options{MinLen: 1}, ">c\nAAAA\n>a\nCC\n>b\nGGG\n")
	ci, ai, bi := strings.Index(out, ">c"), strings.Index(out, ">a"), strings.Index(out, ">b")
	if !(ci < ai && ai < bi) {
		t.Fatalf("order not preserved:\n%s", out)
	}
}

func TestIdempotence(t *testing.T) {
	in := ">a\nACGTAC\nGT\n>b\nAC\n>c\nACGTACGTA\n"
	o := Options{MinLen: 5}
	once, _ := run(t, o, in)
	twice, st := run(t, o, once)
	if once != twice {
		t.Fatalf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
	if st.Scanned != st.Kept {
		t.Errorf("refiltering dropped records: %+v", st)
	}
}

func TestWrappingPreserved(t *testing.T) {
	in := ">a\nACG\nTACG\nT\n"
	out, _ := run(t, Options{MinLen: 1}, in)
	if out != in {
		t.Fatalf("wrapping altered: %q", out)
	}
}

func TestEmptyOutputIsSuccess(t *testing.T) {
	out, st := run(t, Options{MinLen: 100}, ">a\nAC\n")
	if out != "" || st.Kept != 0 {
		t.Fatalf("expected empty output, got %q (%+v)", out, st)
	}
}

func TestMalformedInputSurfaces(t *testing.T) {
	var out strings.Builder
	_, err := Run(context.Background(), Options{MinLen: 1}, strings.NewReader("ACGT\n>a\nAC\n"), &out)
	var me *fasta.MalformedInputError
	if !errors.As(err, &me) {
		t.Fatalf("want MalformedInputError, got %v", err)
	}
}

func TestInvalidOptionsRejectedBeforeReading(t *testing.T) {
	_, err := Run(context.Background(), Options{MinLen: 10, MaxLen: 2}, strings.NewReader(">a\nAC\n"), &strings.Builder{})
	var te *InvalidThresholdError
	if !errors.As(err, &te) {
		t.Fatalf("want InvalidThresholdError, got %v", err)
	}
}
