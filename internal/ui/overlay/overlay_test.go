package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func grid(w, h int) string {
	row := strings.Repeat("A", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Center(t *testing.T) {
	result := Place(Viewport{Width: 5, Height: 3}, Center, "XX\nXX", grid(5, 3))

	require.Equal(t, []string{"AXXAA", "AXXAA", "AAAAA"}, strings.Split(result, "\n"))
}

func TestPlace_Top(t *testing.T) {
	result := Place(Viewport{Width: 5, Height: 5}, Top, "XX", grid(5, 5))

	lines := strings.Split(result, "\n")
	require.Equal(t, "AXXAA", lines[0])
	require.Equal(t, "AAAAA", lines[4])
}

func TestPlace_TopWithMargin(t *testing.T) {
	result := Place(Viewport{Width: 5, Height: 5, Margin: 1}, Top, "XX", grid(5, 5))

	lines := strings.Split(result, "\n")
	require.Equal(t, "AAAAA", lines[0])
	require.Equal(t, "AXXAA", lines[1])
}

func TestPlace_Bottom(t *testing.T) {
	result := Place(Viewport{Width: 6, Height: 4, Margin: 1}, Bottom, "XXXX", grid(6, 4))

	lines := strings.Split(result, "\n")
	require.Equal(t, "AXXXXA", lines[2])
	require.Equal(t, "AAAAAA", lines[3])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	result := Place(Viewport{Width: 4, Height: 4}, Center, "XX", "AAAA")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 4)
	require.Equal(t, " XX", lines[1], "missing background cells become spaces")
}

func TestPlace_ClipsWideForeground(t *testing.T) {
	result := Place(Viewport{Width: 3, Height: 2}, Center, "XXXXX", grid(3, 2))

	for _, line := range strings.Split(result, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 3)
	}
	require.Contains(t, result, "XXX")
}

func TestPlace_PreservesStyledBackground(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bg := red.Render("AAAAAA")

	result := Place(Viewport{Width: 6, Height: 1}, Center, "XX", bg)

	require.Equal(t, "AAXXAA", ansi.Strip(result))
}

func TestPlace_WideRunes(t *testing.T) {
	result := Place(Viewport{Width: 6, Height: 1}, Center, "日本", grid(6, 1))

	require.Equal(t, "A日本A", result)
	require.Equal(t, 6, ansi.StringWidth(result))
}
