package tui

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sumbench/internal/config"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/orchestration"
)

// Scale selects how values are mapped onto the chart axes.
type Scale int

const (
	// ScaleLinear maps N and seconds linearly, with the y axis starting at 0.
	ScaleLinear Scale = iota
	// ScaleLog maps both axes by log10. Non-positive values are not drawn.
	ScaleLog
)

// ParseScale converts a configuration value into a Scale.
func ParseScale(s string) (Scale, error) {
	switch s {
	case config.ScaleLinear, "":
		return ScaleLinear, nil
	case config.ScaleLog:
		return ScaleLog, nil
	}
	return ScaleLinear, apperrors.ValidationError{Field: "plot-scale", Message: fmt.Sprintf("unknown scale %q (want linear or log)", s)}
}

// String returns the configuration name of the scale.
func (s Scale) String() string {
	if s == ScaleLog {
		return config.ScaleLog
	}
	return config.ScaleLinear
}

// Toggle returns the other scale.
func (s Scale) Toggle() Scale {
	if s == ScaleLog {
		return ScaleLinear
	}
	return ScaleLog
}

func (s Scale) project(v float64) (float64, bool) {
	if s != ScaleLog {
		return v, true
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return math.Log10(v), true
}

func (s Scale) unproject(v float64) float64 {
	if s == ScaleLog {
		return math.Pow(10, v)
	}
	return v
}

// Chart layout constants.
const (
	yLabelWidth   = 10
	chartMinRows  = 2
	chartMinCols  = 4
	chartOverhead = 3 // caption, x axis, x labels
)

type bounds struct{ lo, hi float64 }

func (b bounds) widen() bounds {
	if b.hi > b.lo {
		return b
	}
	return bounds{b.lo - 1, b.hi + 1}
}

func (b bounds) scale(v float64, dots int) int {
	return int(math.Round((v - b.lo) / (b.hi - b.lo) * float64(dots-1)))
}

// ChartModel renders the average time of every series against N as a
// braille line chart.
type ChartModel struct {
	series []orchestration.Series
	scale  Scale
	width  int
	height int
}

// NewChartModel creates a chart for the given series.
func NewChartModel(series []orchestration.Series, scale Scale) ChartModel {
	return ChartModel{series: series, scale: scale}
}

// SetSize updates the dimensions, borders included.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
}

// SetScale changes the axis scale.
func (c *ChartModel) SetScale(s Scale) { c.scale = s }

// Scale returns the current axis scale.
func (c ChartModel) Scale() Scale { return c.scale }

// View renders the bordered chart panel.
func (c ChartModel) View() string {
	innerW := max(c.width-2, yLabelWidth+1+chartMinCols)
	innerH := max(c.height-2, chartMinRows+chartOverhead)
	content := strings.Join(c.lines(innerW, innerH), "\n")
	return panelStyle.Width(innerW).Height(innerH).Render(content)
}

// lines renders the chart body into exactly h lines of w columns.
func (c ChartModel) lines(w, h int) []string {
	rows := h - chartOverhead
	cols := w - yLabelWidth - 1
	canvas := NewCanvas(cols, rows)

	xb, yb, ok := c.bounds()
	if ok {
		for i, s := range c.series {
			c.draw(canvas, i, s, xb, yb)
		}
	}

	out := make([]string, 0, h)
	out = append(out, chartCaptionStyle.Render(fitWidth(fmt.Sprintf("average seconds vs N (%s)", c.scale), w)))

	plotted := canvas.Rows(seriesStyle)
	for r, row := range plotted {
		label := ""
		if ok {
			switch r {
			case 0:
				label = axisLabel(c.scale.unproject(yb.hi))
			case rows - 1:
				label = axisLabel(c.scale.unproject(yb.lo))
			case rows / 2:
				if rows > 4 {
					label = axisLabel(c.scale.unproject((yb.lo + yb.hi) / 2))
				}
			}
		}
		tick := "│"
		if label != "" {
			tick = "┤"
		}
		out = append(out, axisStyle.Render(fmt.Sprintf("%*s", yLabelWidth, label+" ")+tick)+row)
	}

	out = append(out, axisStyle.Render(spaces(yLabelWidth)+"└"+strings.Repeat("─", cols)))

	xLabels := ""
	if ok {
		left := axisLabel(c.scale.unproject(xb.lo))
		right := axisLabel(c.scale.unproject(xb.hi))
		xLabels = left + spaces(cols-len(left)-len(right)) + right
	}
	out = append(out, axisStyle.Render(spaces(yLabelWidth+1)+fitWidth(xLabels, cols)))
	return out
}

// bounds returns the projected x and y ranges covering every drawable point.
func (c ChartModel) bounds() (xb, yb bounds, ok bool) {
	first := true
	for _, s := range c.series {
		for _, p := range s.Points {
			x, okx := c.scale.project(float64(p.N))
			y, oky := c.scale.project(p.AverageSeconds)
			if !okx || !oky {
				continue
			}
			if first {
				xb, yb, first = bounds{x, x}, bounds{y, y}, false
				continue
			}
			xb = bounds{math.Min(xb.lo, x), math.Max(xb.hi, x)}
			yb = bounds{math.Min(yb.lo, y), math.Max(yb.hi, y)}
		}
	}
	if first {
		return bounds{}, bounds{}, false
	}
	if c.scale == ScaleLinear {
		yb.lo = math.Min(yb.lo, 0)
	}
	return xb.widen(), yb.widen(), true
}

func (c ChartModel) draw(canvas *Canvas, index int, s orchestration.Series, xb, yb bounds) {
	points := slices.Clone(s.Points)
	slices.SortStableFunc(points, func(a, b orchestration.SizeResult) int {
		return cmp.Compare(a.N, b.N)
	})

	prevX, prevY, havePrev := 0, 0, false
	for _, p := range points {
		x, okx := c.scale.project(float64(p.N))
		y, oky := c.scale.project(p.AverageSeconds)
		if !okx || !oky {
			continue
		}
		dx := xb.scale(x, canvas.DotWidth())
		dy := canvas.DotHeight() - 1 - yb.scale(y, canvas.DotHeight())
		if havePrev {
			canvas.Line(prevX, prevY, dx, dy, index)
		} else {
			canvas.Set(dx, dy, index)
		}
		prevX, prevY, havePrev = dx, dy, true
	}
}

// axisLabel formats an axis value with four significant digits.
func axisLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// fitWidth pads or truncates s to exactly w columns.
func fitWidth(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + spaces(w-n)
	}
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s
}
