package bubblepop

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/calverley/bubblepop/internal/compositor"
)

// alertZoneID marks the alert box for mouse hit-testing.
const alertZoneID = "bubblepop.alert"

const maxBoxWidth = 60

// renderSurface composites the active alert over the base view.
func (m Model) renderSurface(base string) string {
	ov := m.host.active
	if ov == nil {
		return base
	}

	width, height := m.host.Size()
	a := m.attachmentByTag(ov.tag)

	backdrop := base
	if ov.cfg.DimBackground && ov.cfg.Shown() {
		backdrop = compositor.Dim(base, func(s string) string { return m.styles.Backdrop.Render(s) })
	}

	progress := 1.0
	if a != nil {
		progress = a.anim.progress()
	}

	box := m.renderBox(ov, progress)
	if box == "" {
		return backdrop
	}

	x, y := boxPosition(ov.cfg, progress, lipgloss.Width(box), lipgloss.Height(box), width, height)
	box = m.host.zones.Mark(alertZoneID, box)
	return compositor.Overlay(backdrop, box, x, y, width, height)
}

// renderBox draws the alert's framed content. For the fade transition the
// box steps through hidden, faint, and full as progress moves.
func (m Model) renderBox(ov *overlay, progress float64) string {
	style := m.styles.ForLevel(ov.cfg.Level)

	if ov.cfg.Transition == TransitionFade {
		switch {
		case progress < 0.35:
			return ""
		case progress < 0.75:
			style = style.Faint(true)
		}
	}

	width, _ := m.host.Size()
	boxWidth := width - 8
	if boxWidth > maxBoxWidth {
		boxWidth = maxBoxWidth
	}
	if boxWidth < 10 {
		boxWidth = width - 2
	}

	var body string
	if ov.cfg.Title != "" {
		body = m.styles.Title.Render(ov.cfg.Title) + "\n"
	}
	if ov.content != nil {
		body += ov.content.View()
	}

	return style.Width(boxWidth).Render(body)
}

// boxPosition places the box for the current transition progress. Fade
// stays centered; slide travels between its offscreen start beyond cfg.Edge
// and the center.
func boxPosition(cfg *Config, progress float64, boxW, boxH, width, height int) (x, y int) {
	x = (width - boxW) / 2
	y = (height - boxH) / 2

	if cfg.Transition != TransitionSlide {
		return x, y
	}

	remain := 1 - progress
	switch cfg.Edge {
	case EdgeTop:
		y -= int(math.Round(remain * float64(y+boxH)))
	case EdgeBottom:
		y += int(math.Round(remain * float64(height-y)))
	case EdgeLeft:
		x -= int(math.Round(remain * float64(x+boxW)))
	case EdgeRight:
		x += int(math.Round(remain * float64(width-x)))
	}
	return x, y
}
