package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew_StandardStyles(t *testing.T) {
	for _, style := range []string{"dark", "light", "notty"} {
		t.Run(style, func(t *testing.T) {
			r, err := New(60, style)
			require.NoError(t, err)
			require.Equal(t, 60, r.Width())
			require.Equal(t, style, r.Style())
		})
	}
}

func TestNew_UnknownStyle(t *testing.T) {
	_, err := New(60, "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "creating markdown renderer")
}

func TestRender(t *testing.T) {
	r, err := New(60, "notty")
	require.NoError(t, err)

	out, err := r.Render("## Fields\n\n- **Username** required\n")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Fields")
	require.Contains(t, plain, "Username")
	require.Contains(t, plain, "required")
}
