package stats

import "testing"

func summaryOf(lengths ...int) *Summary {
	var s Summary
	for _, l := range lengths {
		s.Add(l)
	}
	return &s
}

func TestBasicMetrics(t *testing.T) {
	s := summaryOf(10, 8, 6, 4, 2)
	if s.Count() != 5 || s.Total() != 30 {
		t.Fatalf("count=%d total=%d", s.Count(), s.Total())
	}
	if s.Min() != 2 || s.Max() != 10 {
		t.Errorf("min=%d max=%d", s.Min(), s.Max())
	}
	if s.Mean() != 6.0 {
		t.Errorf("mean=%v", s.Mean())
	}
}

func TestN50(t *testing.T) {
	// total 30, half covered after 10+8
	s := summaryOf(10, 8, 6, 4, 2)
	if got := s.NStat(0.5); got != 8 {
		t.Errorf("N50=%d, want 8", got)
	}
	// 90% of 30 = 27, covered after 10+8+6+4
	if got := s.NStat(0.9); got != 4 {
		t.Errorf("N90=%d, want 4", got)
	}
}

func TestN50OrderIndependent(t *testing.T) {
	a := summaryOf(2, 10, 4, 8, 6)
	b := summaryOf(10, 8, 6, 4, 2)
	if a.NStat(0.5) != b.NStat(0.5) {
		t.Fatalf("N50 depends on insertion order")
	}
}

func TestSingleSequence(t *testing.T) {
	s := summaryOf(42)
	if s.NStat(0.5) != 42 || s.NStat(0.9) != 42 {
		t.Errorf("N50/N90 of single sequence = %d/%d", s.NStat(0.5), s.NStat(0.9))
	}
}

func TestEmptySummary(t *testing.T) {
	var s Summary
	r := s.Report("empty")
	if r.Sequences != 0 || r.TotalLength != 0 || r.N50 != 0 || r.MeanLength != 0 {
		t.Fatalf("empty report %+v", r)
	}
}

func TestReport(t *testing.T) {
	r := summaryOf(10, 8, 6, 4, 2).Report("asm")
	if r.Name != "asm" || r.N50 != 8 || r.N90 != 4 || r.MeanLength != 6.0 {
		t.Fatalf("report %+v", r)
	}
}
