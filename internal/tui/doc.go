// Package tui renders benchmark averages as a braille line chart, either in
// an interactive bubbletea viewer ([Run]) or once as text ([RenderStatic]).
package tui
