// Package app contains the root application model.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/submit"
	"github.com/zjrosen/signup/internal/ui/help"
	"github.com/zjrosen/signup/internal/ui/regform"
	"github.com/zjrosen/signup/internal/ui/toaster"
)

// SuccessMessage is shown once for every accepted registration.
const SuccessMessage = "Registered Successfully"

// Submitter sends a registration payload to the collaborator.
type Submitter interface {
	Submit(ctx context.Context, p registration.Payload) (submit.Ack, error)
}

// Options configures the application model.
type Options struct {
	Submitter     Submitter
	IDs           registration.IDSource // nil uses registration.RandomID
	FormWidth     int
	ToastDuration time.Duration // 0 keeps toasts until a key dismisses them
	MarkdownStyle string
}

// submitDoneMsg reports the outcome of one submission.
type submitDoneMsg struct {
	payloadID int
	ack       submit.Ack
	err       error
}

// Model is the root application state.
type Model struct {
	form      regform.Model
	help      help.Model
	showHelp  bool
	submitter Submitter
	ids       registration.IDSource

	// Centralized toaster - owned by app, not the form
	toaster       toaster.Model
	toastDuration time.Duration

	inFlight  int
	formWidth int
	width     int
	height    int
}

// New creates the application model.
func New(opts Options) Model {
	width := opts.FormWidth
	if width <= 0 {
		width = 60
	}
	return Model{
		form:          regform.New(width),
		help:          help.New(opts.MarkdownStyle),
		submitter:     opts.Submitter,
		ids:           opts.IDs,
		toaster:       toaster.New().SetWidth(width),
		toastDuration: opts.ToastDuration,
		formWidth:     width,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := max(min(m.formWidth, msg.Width-4), 20)
		m.form = m.form.SetWidth(w)
		m.toaster = m.toaster.SetWidth(min(msg.Width, w+10))
		m.help = m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.showHelp || m.toaster.Visible() {
			return m, nil
		}

	case regform.SubmitMsg:
		return m.startSubmit(msg.Form)

	case submitDoneMsg:
		return m.finishSubmit(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Form.Quit) {
		return m, tea.Quit
	}

	// A visible toast takes the next key and closes.
	if m.toaster.Visible() {
		m.toaster = m.toaster.Hide()
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, keys.Form.Help, keys.Form.Dismiss) {
			m.showHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.Form.Help) {
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// startSubmit builds the payload and launches the request off the event loop.
// Repeated submissions are not de-duplicated.
func (m Model) startSubmit(form registration.Form) (tea.Model, tea.Cmd) {
	p, err := registration.NewPayload(form, m.ids)
	if err != nil {
		log.Warn(log.CatSubmit, "Ignoring submission", "error", err)
		return m, nil
	}
	if m.submitter == nil {
		log.Error(log.CatSubmit, "No submitter configured")
		return m, nil
	}

	m.inFlight++
	m.form = m.form.SetSending(m.inFlight)
	log.Debug(log.CatSubmit, "Submitting registration", "payload_id", p.ID, "in_flight", m.inFlight)

	submitter := m.submitter
	return m, func() tea.Msg {
		ack, err := submitter.Submit(context.Background(), p)
		return submitDoneMsg{payloadID: p.ID, ack: ack, err: err}
	}
}

func (m Model) finishSubmit(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.inFlight = max(m.inFlight-1, 0)
	m.form = m.form.SetSending(m.inFlight)

	if msg.err != nil {
		var statusErr *submit.StatusError
		if errors.As(msg.err, &statusErr) {
			log.Error(log.CatSubmit, "Collaborator rejected registration", "payload_id", msg.payloadID, "status", statusErr.Code)
		}
		return m.showToast(msg.err.Error(), toaster.KindError)
	}

	m.form = m.form.Reset()
	return m.showToast(SuccessMessage, toaster.KindSuccess)
}

// showToast displays a notification and schedules its dismissal when a
// toast duration is configured.
func (m Model) showToast(message string, kind toaster.Kind) (tea.Model, tea.Cmd) {
	m.toaster = m.toaster.Show(message, kind)
	return m, m.toaster.ScheduleDismiss(m.toastDuration)
}

// View implements tea.Model.
func (m Model) View() string {
	view := lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, view)
	}

	if m.showHelp {
		view = m.help.Overlay(view)
	}

	// Overlay toaster on top of the form
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}

	return zone.Scan(view)
}
