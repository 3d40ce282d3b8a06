// Package ui holds the color palette shared by the console output and the
// plot viewer. One Theme yields both the ANSI escapes printed by the cli
// package and the lipgloss colors used by the tui package, so switching to
// NoColorTheme (--no-color or NO_COLOR) affects both at once.
package ui
