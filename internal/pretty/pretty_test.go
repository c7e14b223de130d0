package pretty

import (
	"strings"
	"testing"

	"fakit-core/stats"
)

func TestRenderSummary(t *testing.T) {
	var s stats.Summary
	for _, l := range []int{10, 8, 6, 4, 2} {
		s.Add(l)
	}
	out := RenderSummary(s.Report("asm"))

	for _, want := range []string{"asm", "sequences", "N50", "30", "8"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered summary missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("summary should end with a newline")
	}
}
