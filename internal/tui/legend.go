package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/internal/orchestration"
)

// LegendModel lists the plotted series with their colors and summarizes the
// comparison at the largest measured size.
type LegendModel struct {
	series      []orchestration.Series
	comparisons []orchestration.Comparison
}

// NewLegendModel creates a legend for the given series.
func NewLegendModel(series []orchestration.Series) LegendModel {
	return LegendModel{series: series, comparisons: orchestration.Compare(series)}
}

// Height returns the number of lines View produces.
func (l LegendModel) Height() int {
	h := len(l.series)
	if l.summary() != "" {
		h++
	}
	return h
}

// View renders one line per series, then the comparison summary.
func (l LegendModel) View() string {
	lines := make([]string, 0, l.Height())
	for i, s := range l.series {
		line := seriesStyle(i).Render("━━") + " " + legendLabelStyle.Render(s.Label)
		if n := len(s.Points); n > 0 {
			last := s.Points[n-1]
			line += legendDimStyle.Render(fmt.Sprintf("  avg at N=%s: ", format.FormatNumberString(fmt.Sprint(last.N)))) +
				legendValueStyle.Render(strings.TrimSpace(format.FormatSeconds(last.AverageSeconds))+" s")
		}
		lines = append(lines, line)
	}
	if s := l.summary(); s != "" {
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

// summary describes the fastest series at the last compared size, or is
// empty when no speedup can be computed.
func (l LegendModel) summary() string {
	if len(l.comparisons) == 0 {
		return ""
	}
	c := l.comparisons[len(l.comparisons)-1]
	if c.Speedup == 0 {
		return ""
	}
	return legendDimStyle.Render(fmt.Sprintf("fastest at N=%s: ", format.FormatNumberString(fmt.Sprint(c.N)))) +
		legendValueStyle.Render(l.series[c.Fastest].Label) +
		legendDimStyle.Render(fmt.Sprintf(" (%.1fx)", c.Speedup))
}
