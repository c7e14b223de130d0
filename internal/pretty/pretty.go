// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fakit-core/stats"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Width(10)
)

// RenderSummary renders one assembly summary as an aligned key/value
// block for terminal display.
func RenderSummary(r stats.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Name))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteByte(' ')
		b.WriteString(value)
		b.WriteByte('\n')
	}
	row("sequences", fmt.Sprintf("%d", r.Sequences))
	row("total bp", fmt.Sprintf("%d", r.TotalLength))
	row("min", fmt.Sprintf("%d", r.MinLength))
	row("max", fmt.Sprintf("%d", r.MaxLength))
	row("mean", fmt.Sprintf("%.1f", r.MeanLength))
	row("N50", fmt.Sprintf("%d", r.N50))
	row("N90", fmt.Sprintf("%d", r.N90))
	return b.String()
}
