package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette of xterm-256 color indices. An empty index renders
// text uncolored.
type Theme struct {
	Name string

	Text    string
	Border  string
	Accent  string
	Muted   string
	Success string
	Warning string
	Error   string
	Info    string
	// Series holds one line color per plotted strategy.
	Series []string

	// Plain suppresses bold, underline and reset sequences.
	Plain bool
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Text:    "252",
		Border:  "208",
		Accent:  "39",
		Muted:   "245",
		Success: "82",
		Warning: "220",
		Error:   "196",
		Info:    "141",
		Series:  []string{"208", "39", "82", "141"},
	}

	// NoColorTheme prints everything in the terminal's default colors.
	NoColorTheme = Theme{Name: "none", Plain: true}
)

var (
	themeMu sync.RWMutex
	active  = DarkTheme
)

// Current returns the active theme.
func Current() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return active
}

// Use makes t the active theme.
func Use(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	active = t
}

// InitTheme selects the theme for a run. Colors are off when noColor is set
// or when the NO_COLOR environment variable exists (https://no-color.org/).
func InitTheme(noColor bool) {
	Use(selectTheme(noColor))
}

func selectTheme(noColor bool) Theme {
	if noColor {
		return NoColorTheme
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoColorTheme
	}
	return DarkTheme
}

func (t Theme) escape(index string) string {
	if index == "" {
		return ""
	}
	return "\033[38;5;" + index + "m"
}

func (t Theme) attr(seq string) string {
	if t.Plain {
		return ""
	}
	return seq
}

// TUITheme is a Theme converted to lipgloss colors.
type TUITheme struct {
	Text   lipgloss.TerminalColor
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
	Info   lipgloss.TerminalColor
	Series []lipgloss.TerminalColor
}

// TUI converts the palette for the plot viewer.
func (t Theme) TUI() TUITheme {
	tt := TUITheme{
		Text:   tuiColor(t.Text),
		Border: tuiColor(t.Border),
		Accent: tuiColor(t.Accent),
		Dim:    tuiColor(t.Muted),
		Info:   tuiColor(t.Info),
	}
	for _, c := range t.Series {
		tt.Series = append(tt.Series, tuiColor(c))
	}
	return tt
}

func tuiColor(index string) lipgloss.TerminalColor {
	if index == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(index)
}

// SeriesColor returns the line color of the i-th series, cycling through
// the palette. Without a palette every series uses Text.
func (t TUITheme) SeriesColor(i int) lipgloss.TerminalColor {
	if len(t.Series) == 0 {
		return t.Text
	}
	return t.Series[i%len(t.Series)]
}

// CurrentTUITheme returns the active theme converted for the plot viewer.
func CurrentTUITheme() TUITheme { return Current().TUI() }
