package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rounded border characters used by RenderFormSection.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Section describes one bordered block of the form.
type Section struct {
	Title    string
	Required bool   // appends a red "*" to the title
	Icon     string // IconValid, IconInvalid or empty
	Width    int    // total width including borders
	Focused  bool
}

// RenderFormSection renders content inside a rounded border with the title
// inlined in the top edge: ╭─ Title * ✓ ─────╮
// Focused sections use FormTextInputFocusedBorderColor.
func RenderFormSection(content []string, s Section) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if s.Focused {
		borderColor = FormTextInputFocusedBorderColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(borderColor)

	innerWidth := max(s.Width-2, 1)

	var topBorder string
	if s.Title == "" {
		topBorder = borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	} else {
		// Suffix is the required mark and icon, each preceded by a space.
		suffixWidth := 0
		if s.Required {
			suffixWidth += 2
		}
		if s.Icon != "" {
			suffixWidth += 1 + lipgloss.Width(s.Icon)
		}

		// "─ " before the title and " " after it.
		title := ansi.Truncate(s.Title, max(innerWidth-suffixWidth-3, 1), "…")
		dashesAfter := max(innerWidth-lipgloss.Width(title)-suffixWidth-3, 0)

		topBorder = borderStyle.Render(borderTopLeft+borderHorizontal+" ") + titleStyle.Render(title)
		if s.Required {
			topBorder += " " + RequiredStyle.Render("*")
		}
		switch s.Icon {
		case "":
		case IconInvalid:
			topBorder += " " + InvalidIconStyle.Render(s.Icon)
		default:
			topBorder += " " + ValidIconStyle.Render(s.Icon)
		}
		topBorder += borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashesAfter) + borderTopRight)
	}

	lines := make([]string, 0, len(content))
	for _, row := range content {
		padding := ""
		if w := lipgloss.Width(row); w < innerWidth {
			padding = strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render(borderVertical)+row+padding+borderStyle.Render(borderVertical))
	}

	bottomBorder := borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight)

	if len(lines) == 0 {
		return topBorder + "\n" + bottomBorder
	}
	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}

// RenderButton renders a button label in the style matching its state.
func RenderButton(label string, focused, enabled bool) string {
	switch {
	case focused:
		return PrimaryButtonFocusedStyle.Render(label)
	case !enabled:
		return DisabledButtonStyle.Render(label)
	default:
		return PrimaryButtonStyle.Render(label)
	}
}
