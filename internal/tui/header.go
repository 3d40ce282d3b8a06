package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sumbench/internal/sysmon"
)

// loadHistory is the number of load samples kept for the header sparklines.
const loadHistory = 12

// HeaderModel renders the top bar: title, version, scale and host load.
type HeaderModel struct {
	version string
	scale   Scale
	cpu     *RingBuffer
	mem     *RingBuffer
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string, scale Scale) HeaderModel {
	return HeaderModel{
		version: version,
		scale:   scale,
		cpu:     NewRingBuffer(loadHistory),
		mem:     NewRingBuffer(loadHistory),
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// SetScale updates the displayed scale.
func (h *HeaderModel) SetScale(s Scale) {
	h.scale = s
}

// AddSample records a host load sample.
func (h *HeaderModel) AddSample(s sysmon.Stats) {
	h.cpu.Push(s.CPUPercent)
	h.mem.Push(s.MemPercent)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "sumbench plot"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")
	left := titleStyle.Render(titleText) + pipe + versionStyle.Render("scale: "+h.scale.String())

	right := ""
	if h.cpu.Len() > 0 {
		right = loadStyle.Render(fmt.Sprintf("CPU %s %3.0f%%", RenderSparkline(h.cpu.Slice()), h.cpu.Last())) +
			pipe +
			loadStyle.Render(fmt.Sprintf("Mem %s %3.0f%%", RenderSparkline(h.mem.Slice()), h.mem.Last()))
	}

	innerWidth := max(h.width-2, 0)
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return headerStyle.Width(h.width).Render(left + spaces(gap) + right)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
