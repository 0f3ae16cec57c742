// Package help contains the help overlay listing the field rules and keys.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/markdown"
	"github.com/zjrosen/signup/internal/ui/overlay"
	"github.com/zjrosen/signup/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// boxChrome is the horizontal space taken by the border and content padding.
const boxChrome = 2 + 4

// Document returns the help text as markdown.
func Document(km keys.FormKeyMap) string {
	var b strings.Builder

	b.WriteString("## Fields\n\nEvery field is required. SEND stays disabled until all four are valid.\n\n")
	for _, f := range registration.Fields {
		fmt.Fprintf(&b, "- **%s**: %s\n", f.Label(), fieldRule(f))
	}

	b.WriteString("\n## Keys\n\n")
	for _, group := range km.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", h.Key, h.Desc)
		}
	}
	return b.String()
}

// fieldRule describes what makes a field valid.
func fieldRule(f registration.Field) string {
	if f == registration.FieldConfirmPassword {
		return "must repeat the password exactly."
	}
	return registration.Hint(f)
}

// Model holds the help view state.
type Model struct {
	style    string
	width    int
	height   int
	rendered string
}

// New creates a help view rendered with the given glamour style.
func New(style string) Model {
	return Model{style: style}
}

// SetSize updates dimensions and re-renders the document for the new width.
func (m Model) SetSize(width, height int) Model {
	if width != m.width || m.rendered == "" {
		m.rendered = render(Document(keys.Form), max(width-boxChrome-2, 20), m.style)
	}
	m.width = width
	m.height = height
	return m
}

// render falls back to the markdown source when glamour fails.
func render(doc string, width int, style string) string {
	r, err := markdown.New(width, style)
	if err != nil {
		log.ErrorErr(log.CatUI, "Help renderer unavailable", err, "style", style)
		return doc
	}
	out, err := r.Render(doc)
	if err != nil {
		log.ErrorErr(log.CatUI, "Help render failed", err)
		return doc
	}
	return strings.Trim(out, "\n")
}

// View renders the help box centered on an empty screen.
func (m Model) View() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.box())
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	return overlay.Place(overlay.Viewport{Width: m.width, Height: m.height}, overlay.Center, m.box(), background)
}

func (m Model) box() string {
	body := m.rendered
	if body == "" {
		body = Document(keys.Form)
	}
	footer := footerStyle.Render(fmt.Sprintf("Press %s or %s to close",
		keys.Form.Help.Help().Key, keys.Form.Dismiss.Help().Key))
	content := contentStyle.Render(body + "\n" + footer)

	boxWidth := lipgloss.Width(content)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", boxWidth)))
	b.WriteString("\n")
	b.WriteString(content)
	return boxStyle.Width(boxWidth).Render(b.String())
}
