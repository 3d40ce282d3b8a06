package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sumbench/internal/ui"
)

// Style variables for the plot viewer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	loadStyle         lipgloss.Style
	chartCaptionStyle lipgloss.Style
	axisStyle         lipgloss.Style
	legendLabelStyle  lipgloss.Style
	legendValueStyle  lipgloss.Style
	legendDimStyle    lipgloss.Style
	footerKeyStyle    lipgloss.Style
	footerDescStyle   lipgloss.Style
	seriesStyles      []lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run and RenderStatic, after the
// application has chosen a theme.
func initTUIStyles() {
	t := ui.CurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	loadStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	chartCaptionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	axisStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	legendLabelStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	legendValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	legendDimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	seriesStyles = make([]lipgloss.Style, max(len(t.Series), 1))
	for i := range seriesStyles {
		seriesStyles[i] = lipgloss.NewStyle().Foreground(t.SeriesColor(i))
	}
}

// seriesStyle returns the line style of the i-th series.
func seriesStyle(i int) lipgloss.Style {
	return seriesStyles[i%len(seriesStyles)]
}
