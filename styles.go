package bubblepop

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette subset
var (
	colorBase     = lipgloss.Color("#24273a")
	colorSurface2 = lipgloss.Color("#5b6078")
	colorText     = lipgloss.Color("#cad3f5")
	colorBlue     = lipgloss.Color("#8aadf4")
	colorGreen    = lipgloss.Color("#a6da95")
	colorYellow   = lipgloss.Color("#eed49f")
	colorRed      = lipgloss.Color("#ed8796")
)

// Styles holds the lipgloss styles for the overlay surface.
type Styles struct {
	// Backdrop is applied line by line to the dimmed view behind the alert.
	Backdrop lipgloss.Style

	// Box frames the alert content; the per-level styles override its
	// border and text accents.
	Box   lipgloss.Style
	Title lipgloss.Style

	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates the default alert styling.
func NewStyles() *Styles {
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Background(colorBase).
		Padding(1, 2)

	return &Styles{
		Backdrop: lipgloss.NewStyle().
			Faint(true).
			Foreground(colorSurface2),

		Box: box,

		Title: lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			MarginBottom(1),

		Info: box.
			BorderForeground(colorBlue).
			Foreground(colorBlue),

		Success: box.
			BorderForeground(colorGreen).
			Foreground(colorGreen),

		Warning: box.
			BorderForeground(colorYellow).
			Foreground(colorYellow),

		Error: box.
			BorderForeground(colorRed).
			Foreground(colorRed),
	}
}

// ForLevel returns the box style for an alert level.
func (s *Styles) ForLevel(level Level) lipgloss.Style {
	switch level {
	case LevelSuccess:
		return s.Success
	case LevelWarning:
		return s.Warning
	case LevelError:
		return s.Error
	default:
		return s.Info
	}
}
