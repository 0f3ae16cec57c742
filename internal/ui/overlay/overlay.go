// Package overlay composites a foreground block (toast, help screen) over the
// rendered form without clearing it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is the anchor of the foreground inside the viewport.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Viewport is the area the foreground is placed in.
type Viewport struct {
	Width  int
	Height int
	Margin int // rows kept free above Top or below Bottom
}

// Place draws fg over bg at pos. Both may contain ANSI styling; cells outside
// the foreground keep the background's styling. Foreground lines are clipped
// to the viewport width and the background is padded to the viewport height.
func Place(vp Viewport, pos Position, fg, bg string) string {
	rows := strings.Split(bg, "\n")
	for len(rows) < vp.Height {
		rows = append(rows, "")
	}

	block := strings.Split(fg, "\n")
	x, y := origin(vp, pos, lipgloss.Width(fg), len(block))

	for i, line := range block {
		row := y + i
		if row >= len(rows) {
			break
		}
		if vp.Width > 0 {
			line = ansi.Truncate(line, max(vp.Width-x, 0), "")
		}
		rows[row] = splice(rows[row], line, x)
	}
	return strings.Join(rows, "\n")
}

// splice replaces the cells of row starting at column x with line.
func splice(row, line string, x int) string {
	left := ansi.Truncate(row, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	if end := x + ansi.StringWidth(line); end < ansi.StringWidth(row) {
		right = ansi.TruncateLeft(row, end, "")
	}
	return left + line + right
}

func origin(vp Viewport, pos Position, w, h int) (x, y int) {
	x = (vp.Width - w) / 2
	switch pos {
	case Top:
		y = vp.Margin
	case Bottom:
		y = vp.Height - h - vp.Margin
	default:
		y = (vp.Height - h) / 2
	}
	return max(x, 0), max(y, 0)
}
