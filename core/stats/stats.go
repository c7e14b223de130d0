// core/stats/stats.go

// Package stats accumulates sequence length distributions and derives the
// usual assembly metrics (N50 and friends) from them.
package stats

import "sort"

// Summary collects sequence lengths one at a time. Quantile metrics are
// computed on demand from the retained length list.
type Summary struct {
	lengths []int
	total   int
}

func (s *Summary) Add(length int) {
	s.lengths = append(s.lengths, length)
	s.total += length
}

func (s *Summary) Count() int { return len(s.lengths) }
func (s *Summary) Total() int { return s.total }

func (s *Summary) Min() int {
	if len(s.lengths) == 0 {
		return 0
	}
	min := s.lengths[0]
	for _, l := range s.lengths[1:] {
		if l < min {
			min = l
		}
	}
	return min
}

func (s *Summary) Max() int {
	max := 0
	for _, l := range s.lengths {
		if l > max {
			max = l
		}
	}
	return max
}

func (s *Summary) Mean() float64 {
	if len(s.lengths) == 0 {
		return 0
	}
	return float64(s.total) / float64(len(s.lengths))
}

// NStat returns the Nxx metric for fraction f in (0,1]: the largest
// length L such that sequences of length >= L cover at least f of the
// total assembly. NStat(0.5) is the classic N50.
func (s *Summary) NStat(f float64) int {
	if len(s.lengths) == 0 || s.total == 0 {
		return 0
	}
	ls := append([]int(nil), s.lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(ls)))
	thresh := float64(s.total) * f
	cum := 0
	for _, l := range ls {
		cum += l
		if float64(cum) >= thresh {
			return l
		}
	}
	return ls[len(ls)-1]
}

// Report is the flattened form of a Summary for output encoders.
type Report struct {
	Name        string
	Sequences   int
	TotalLength int
	MinLength   int
	MaxLength   int
	MeanLength  float64
	N50         int
	N90         int
}

// Report flattens the summary under the given display name.
func (s *Summary) Report(name string) Report {
	return Report{
		Name:        name,
		Sequences:   s.Count(),
		TotalLength: s.Total(),
		MinLength:   s.Min(),
		MaxLength:   s.Max(),
		MeanLength:  s.Mean(),
		N50:         s.NStat(0.5),
		N90:         s.NStat(0.9),
	}
}
