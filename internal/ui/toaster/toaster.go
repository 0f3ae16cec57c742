// Package toaster provides the notification toast shown after a submission.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/signup/internal/ui/overlay"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// Kind determines the icon and border color of the toast.
type Kind int

const (
	// KindSuccess shows ✓ with a green border.
	KindSuccess Kind = iota
	// KindError shows ✗ with a red border.
	KindError
	// KindInfo shows i with a blue border.
	KindInfo
)

// Icon returns the glyph prepended to the message.
func (k Kind) Icon() string {
	switch k {
	case KindError:
		return "✗"
	case KindInfo:
		return "i"
	default:
		return "✓"
	}
}

// chrome is the width taken by the border, padding and icon.
const chrome = 2 + 2 + 2

// Model holds the toaster state.
type Model struct {
	message string
	kind    Kind
	visible bool
	seq     int
	width   int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message, replacing any visible toast.
func (m Model) Show(message string, kind Kind) Model {
	m.message = message
	m.kind = kind
	m.visible = true
	m.seq++
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the visible message, or "" when hidden.
func (m Model) Message() string {
	return m.message
}

// Kind returns the kind of the last shown toast.
func (m Model) Kind() Kind {
	return m.kind
}

// SetWidth bounds the toast to width columns. 0 leaves it unbounded.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// DismissMsg hides the toast it was scheduled for.
type DismissMsg struct {
	seq int
}

// ScheduleDismiss returns a command that dismisses the current toast after d.
// A toast shown after scheduling is not affected. d <= 0 returns nil.
func (m Model) ScheduleDismiss(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if dm, ok := msg.(DismissMsg); ok && dm.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	switch m.kind {
	case KindError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
	case KindInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
	default:
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
	}

	message := m.message
	if m.width > chrome {
		message = runewidth.Truncate(message, m.width-chrome, "…")
	}
	return style.Render(m.kind.Icon() + " " + message)
}

// Overlay renders the toast one row above the bottom edge of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Viewport{Width: width, Height: height, Margin: 1}, overlay.Bottom, m.View(), bg)
}
