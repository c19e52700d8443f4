package bubblepop

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings the overlay layer handles itself while an
// alert is visible. Everything else goes to the alert's content model.
type KeyMap struct {
	Dismiss key.Binding
}

// DefaultKeyMap returns the default overlay keybindings. The dismiss key is
// subject to the same DisableOutsideClick gate as background clicks.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}
