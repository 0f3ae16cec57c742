package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m := New().Show("Registered Successfully", KindSuccess)

	assert.True(t, m.Visible())
	assert.Equal(t, "Registered Successfully", m.Message())
	assert.Contains(t, m.View(), "✓ Registered Successfully")
}

func TestHide(t *testing.T) {
	m := New().Show("Hello", KindSuccess).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.Message())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", KindSuccess).
		Show("500 Error: Internal Server Error.", KindError)

	assert.Equal(t, KindError, m.Kind())
	assert.Contains(t, m.View(), "✗ 500 Error: Internal Server Error.")
	assert.NotContains(t, m.View(), "First")
}

func TestView_HasRoundedBorder(t *testing.T) {
	view := New().Show("Hi", KindInfo).View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "i Hi")
}

func TestView_TruncatesToWidth(t *testing.T) {
	m := New().SetWidth(20).Show(strings.Repeat("x", 50), KindError)

	view := m.View()
	assert.LessOrEqual(t, lipgloss.Width(view), 20)
	assert.Contains(t, view, "…")
}

func TestScheduleDismiss_ZeroDurationIsNil(t *testing.T) {
	m := New().Show("Hello", KindSuccess)

	assert.Nil(t, m.ScheduleDismiss(0))
}

func TestScheduleDismiss_HidesMatchingToast(t *testing.T) {
	m := New().Show("Hello", KindSuccess)

	cmd := m.ScheduleDismiss(time.Millisecond)
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, DismissMsg{}, msg)

	m = m.Update(msg)
	assert.False(t, m.Visible())
}

func TestScheduleDismiss_IgnoresNewerToast(t *testing.T) {
	m := New().Show("First", KindSuccess)
	msg := m.ScheduleDismiss(time.Millisecond)()

	m = m.Show("Second", KindError)
	m = m.Update(msg)

	assert.True(t, m.Visible())
	assert.Equal(t, "Second", m.Message())
}

func TestOverlay(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 8), "\n")

	hidden := New().Overlay(bg, 30, 8)
	assert.Equal(t, bg, hidden)

	out := New().Show("Saved", KindSuccess).Overlay(bg, 30, 8)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[5], "✓ Saved")
	assert.Equal(t, strings.Repeat(".", 30), lines[7], "bottom row stays free")
}
