// Package compositor splices a block of styled text over a background at a
// fixed cell position, preserving ANSI escape sequences on both sides of
// the cut. It is the terminal equivalent of drawing a window above a view.
package compositor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg over bg with fg's top-left corner at cell (x, y). The
// background is treated as a width×height grid: short backgrounds are
// padded, and foreground cells that fall outside the grid are clipped.
func Overlay(bg, fg string, x, y, width, height int) string {
	if width <= 0 || height <= 0 || fg == "" {
		return bg
	}

	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	fgLines := strings.Split(fg, "\n")
	fgWidth := blockWidth(fgLines)

	for i, fgLine := range fgLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}

		// Pad so the block stays rectangular even when a line is short.
		if pad := fgWidth - ansi.StringWidth(fgLine); pad > 0 {
			fgLine += strings.Repeat(" ", pad)
		}

		col := x
		if col < 0 {
			fgLine = ansi.TruncateLeft(fgLine, -col, "")
			col = 0
		}
		if col+ansi.StringWidth(fgLine) > width {
			fgLine = ansi.Truncate(fgLine, width-col, "")
		}

		lineWidth := ansi.StringWidth(fgLine)
		if lineWidth == 0 {
			continue
		}

		left := ansi.Truncate(bgLines[row], col, "")
		if pad := col - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bgLines[row], col+lineWidth, "")

		bgLines[row] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}

// Dim re-renders every background line through style, stripping whatever
// styling the line carried first so the dimming is uniform.
func Dim(bg string, style func(string) string) string {
	lines := strings.Split(bg, "\n")
	for i, line := range lines {
		lines[i] = style(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

func blockWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
