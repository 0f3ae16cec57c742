// Package regform implements the registration form: four validated inputs
// and a SEND button.
package regform

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// SubmitMsg is sent when SEND is pressed while every field is valid.
// It is never sent for a form with an invalid field.
type SubmitMsg struct {
	Form registration.Form
}

const (
	// sendIndex is the focus position of the SEND button, after the fields.
	sendIndex = 4

	// maxInputLength caps each input well above any valid value.
	maxInputLength = 256

	zoneSendButton = "regform-send"
)

func fieldZoneID(f registration.Field) string {
	return fmt.Sprintf("regform-field-%d", f)
}

// Model is the registration form state.
//
// Model is immutable - all methods return a new Model rather than
// modifying the receiver.
type Model struct {
	form    registration.Form
	inputs  [sendIndex]textinput.Model
	focused int // field index, or sendIndex for the button
	width   int
	sending int // requests in flight
}

// New creates the form with focus on the first field.
func New(width int) Model {
	m := Model{}
	for _, f := range registration.Fields {
		ti := textinput.New()
		ti.Prompt = " "
		ti.Placeholder = registration.Placeholder(f)
		ti.PlaceholderStyle = ti.PlaceholderStyle.Foreground(styles.TextPlaceholderColor)
		ti.CharLimit = maxInputLength
		if f.Secret() {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.inputs[f] = ti
	}
	m = m.SetWidth(width)
	m.inputs[registration.FieldUsername].Focus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns the current field values and validity flags.
func (m Model) Form() registration.Form {
	return m.form
}

// Focused returns the focused field and false, or true when SEND is focused.
func (m Model) Focused() (registration.Field, bool) {
	if m.focused == sendIndex {
		return 0, true
	}
	return registration.Field(m.focused), false
}

// SetWidth sets the total width of the form.
func (m Model) SetWidth(width int) Model {
	m.width = width
	for i := range m.inputs {
		// Border, prompt and cursor take five columns.
		m.inputs[i].Width = max(width-5, 1)
	}
	return m
}

// SetSending records how many submissions are in flight.
func (m Model) SetSending(n int) Model {
	m.sending = max(n, 0)
	return m
}

// Reset clears every field and moves focus back to the first one.
func (m Model) Reset() Model {
	m.form = m.form.Reset()
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focused = int(registration.FieldUsername)
	m.inputs[m.focused].Focus()
	return m
}

// Update handles key, mouse and blink messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return m.handleClick(msg)
		}
		return m, nil
	}

	// Cursor blink and other internal textinput messages.
	if m.focused < sendIndex {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Submit):
		return m.submit()

	case key.Matches(msg, keys.Form.Next):
		return m.focus(m.focused + 1)

	case key.Matches(msg, keys.Form.Prev):
		return m.focus(m.focused - 1)

	case key.Matches(msg, keys.Form.Enter):
		if m.focused == sendIndex {
			return m.submit()
		}
		return m.focus(m.focused + 1)
	}

	if m.focused == sendIndex {
		return m, nil
	}

	field := registration.Field(m.focused)
	var cmd tea.Cmd
	m.inputs[field], cmd = m.inputs[field].Update(msg)
	if value := m.inputs[field].Value(); value != m.form.Value(field) {
		m = m.set(field, value)
	}
	return m, cmd
}

// set stores a value and logs validity transitions. Values are never logged.
func (m Model) set(field registration.Field, value string) Model {
	before := m.form
	m.form = m.form.Set(field, value)
	for _, f := range registration.Fields {
		if before.Valid(f) != m.form.Valid(f) {
			log.Debug(log.CatForm, "Field validity changed", "field", f, "valid", m.form.Valid(f))
		}
	}
	return m
}

// focus moves focus to index, wrapping around the fields and the button.
func (m Model) focus(index int) (Model, tea.Cmd) {
	index = (index + sendIndex + 1) % (sendIndex + 1)
	if m.focused < sendIndex {
		m.inputs[m.focused].Blur()
	}
	m.focused = index
	if index < sendIndex {
		return m, m.inputs[index].Focus()
	}
	return m, nil
}

// submit emits SubmitMsg only for a fully valid form. An invalid form is
// left as is and nothing is sent.
func (m Model) submit() (Model, tea.Cmd) {
	if !m.form.AllValid() {
		var invalid []string
		for _, f := range registration.Fields {
			if !m.form.Valid(f) {
				invalid = append(invalid, f.String())
			}
		}
		log.Debug(log.CatForm, "Submission blocked", "invalid", invalid)
		return m, nil
	}
	form := m.form
	return m, func() tea.Msg { return SubmitMsg{Form: form} }
}

func (m Model) handleClick(msg tea.MouseMsg) (Model, tea.Cmd) {
	if z := zone.Get(zoneSendButton); z != nil && z.InBounds(msg) {
		m, _ = m.focus(sendIndex)
		return m.submit()
	}
	for _, f := range registration.Fields {
		if z := zone.Get(fieldZoneID(f)); z != nil && z.InBounds(msg) {
			return m.focus(int(f))
		}
	}
	return m, nil
}
