package regform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	title     = "Create your account"
	sendLabel = "SEND"
)

// View renders the form. Field sections and the SEND button carry zone
// marks; the caller runs zone.Scan on the final frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	for _, f := range registration.Fields {
		b.WriteString(zone.Mark(fieldZoneID(f), m.renderField(f)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := zone.Mark(zoneSendButton, styles.RenderButton(sendLabel, m.focused == sendIndex, m.form.AllValid()))
	b.WriteString(" " + button)
	if m.sending > 0 {
		b.WriteString("  " + styles.SendingStyle.Render("Sending…"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderField(f registration.Field) string {
	section := styles.Section{
		Title:    f.Label(),
		Required: true,
		Width:    m.width,
		Focused:  m.focused == int(f),
	}

	content := []string{m.inputs[f].View()}

	switch m.form.Status(f) {
	case registration.StatusValid:
		section.Icon = styles.IconValid
	case registration.StatusInvalid:
		section.Icon = styles.IconInvalid
		wrapped := wordwrap.String(registration.Hint(f), max(m.width-4, 10))
		for _, line := range strings.Split(wrapped, "\n") {
			content = append(content, " "+styles.FieldHintStyle.Render(line))
		}
	}

	return styles.RenderFormSection(content, section)
}

func (m Model) renderFooter() string {
	bindings := keys.Form.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, helpEntry(b))
	}
	return styles.FooterStyle.Render(wordwrap.String(" "+strings.Join(parts, " • "), max(m.width, 20)))
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
