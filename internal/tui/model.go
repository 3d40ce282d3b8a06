package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/sysmon"
)

// Layout constants for the plot viewer.
const (
	headerHeight   = 1
	footerHeight   = 1
	minChartHeight = 8
	sampleInterval = time.Second
)

// TickMsg triggers the next host load sample.
type TickMsg time.Time

// SysStatsMsg carries a host load sample.
type SysStatsMsg sysmon.Stats

// Model is the root bubbletea model of the plot viewer.
type Model struct {
	header HeaderModel
	chart  ChartModel
	legend LegendModel
	footer FooterModel
	keymap KeyMap

	width  int
	height int
}

// NewModel creates a viewer for completed series.
func NewModel(series []orchestration.Series, scale Scale, version string) Model {
	km := DefaultKeyMap()
	return Model{
		header: NewHeaderModel(version, scale),
		chart:  NewChartModel(series, scale),
		legend: NewLegendModel(series),
		footer: NewFooterModel(km),
		keymap: km,
	}
}

// Scale returns the scale currently displayed.
func (m Model) Scale() Scale { return m.chart.Scale() }

// Init starts host load sampling.
func (m Model) Init() tea.Cmd {
	return sampleSysStatsCmd()
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case SysStatsMsg:
		m.header.AddSample(sysmon.Stats(msg))
		return m, tickCmd()

	case TickMsg:
		return m, sampleSysStatsCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleScale):
		s := m.chart.Scale().Toggle()
		m.chart.SetScale(s)
		m.header.SetScale(s)
		return m, nil
	}
	return m, nil
}

// View renders the whole viewer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.chart.View(),
		m.legend.View(),
		m.footer.View(),
	)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	h := m.height - headerHeight - footerHeight - m.legend.Height()
	m.chart.SetSize(m.width, max(h, minChartHeight))
}

// Run shows the interactive viewer and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, series []orchestration.Series, scale Scale, version string) error {
	// Rebuild styles from the theme chosen by the application.
	initTUIStyles()

	p := tea.NewProgram(NewModel(series, scale, version), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return apperrors.WrapError(err, "running plot viewer")
	}
	return nil
}

// RenderStatic renders the chart and legend once, for non-interactive output.
func RenderStatic(series []orchestration.Series, scale Scale, width, height int) string {
	initTUIStyles()

	chart := NewChartModel(series, scale)
	chart.SetSize(width, height)
	return lipgloss.JoinVertical(lipgloss.Left, chart.View(), NewLegendModel(series).View())
}

// tickCmd schedules the next load sample.
func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory usage.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}
