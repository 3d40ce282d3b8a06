package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const brailleBlank = 0x2800

// brailleDots maps (col 0-1, row 0-3) within a cell to the braille dot bit.
// Braille character = U+2800 + sum of activated dot bits.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a grid of braille cells addressed in dot coordinates. Each cell
// is 2 dots wide and 4 dots tall. Every cell remembers the last series that
// drew into it so the chart can color lines per series.
type Canvas struct {
	width, rows int
	cells       [][]rune
	owner       [][]int
}

// NewCanvas creates an empty canvas of width × rows text cells.
func NewCanvas(width, rows int) *Canvas {
	width, rows = max(width, 1), max(rows, 1)
	c := &Canvas{width: width, rows: rows}
	c.cells = make([][]rune, rows)
	c.owner = make([][]int, rows)
	for r := range rows {
		c.cells[r] = make([]rune, width)
		c.owner[r] = make([]int, width)
		for col := range width {
			c.cells[r][col] = brailleBlank
			c.owner[r][col] = -1
		}
	}
	return c
}

// DotWidth returns the number of addressable dot columns.
func (c *Canvas) DotWidth() int { return c.width * 2 }

// DotHeight returns the number of addressable dot rows.
func (c *Canvas) DotHeight() int { return c.rows * 4 }

// Set lights the dot at (x, y), with y = 0 at the top. Out-of-range dots
// are ignored.
func (c *Canvas) Set(x, y, series int) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	col, row := x/2, y/4
	c.cells[row][col] |= brailleDots[x%2][y%4]
	c.owner[row][col] = series
}

// Line draws a straight segment between two dots (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1, series int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, series)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Rows renders the canvas. color returns the style for a series index; it may
// be nil for plain output.
func (c *Canvas) Rows(color func(series int) lipgloss.Style) []string {
	out := make([]string, c.rows)
	for r := range c.rows {
		var b strings.Builder
		for col := 0; col < c.width; {
			// Group runs of cells drawn by the same series into one styled span.
			end := col + 1
			for end < c.width && c.owner[r][end] == c.owner[r][col] {
				end++
			}
			run := string(c.cells[r][col:end])
			if color != nil && c.owner[r][col] >= 0 {
				run = color(c.owner[r][col]).Render(run)
			}
			b.WriteString(run)
			col = end
		}
		out[r] = b.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
