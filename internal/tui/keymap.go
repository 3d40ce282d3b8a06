package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the plot viewer.
type KeyMap struct {
	Quit        key.Binding
	ToggleScale key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleScale: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "linear/log"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleScale, k.Quit}
}

// FooterModel renders the key help line.
type FooterModel struct {
	keymap KeyMap
}

// NewFooterModel creates a footer for the given bindings.
func NewFooterModel(k KeyMap) FooterModel {
	return FooterModel{keymap: k}
}

// View renders the footer.
func (f FooterModel) View() string {
	var parts []string
	for _, b := range f.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	line := " "
	for i, p := range parts {
		if i > 0 {
			line += footerDescStyle.Render("  ·  ")
		}
		line += p
	}
	return line
}
