// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

// Field status icons.
const (
	IconValid   = "✓"
	IconInvalid = "!"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#696969"} // Unfocused borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Valid fields, success toasts
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Sending indicator
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Invalid fields, error toasts

	// Button colors
	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonDisabledBgColor     = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#2D2D2D"}

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonPrimaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	// SEND is rendered disabled while any field is invalid. It stays focusable.
	DisabledButtonStyle = baseButtonStyle.
				Foreground(TextMutedColor).
				Background(ButtonDisabledBgColor)

	// Form colors
	FormTextInputFocusedBorderColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#FFF"}
	RequiredMarkColor               = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Overlay colors
	OverlayTitleColor         = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#C9C9C9"}
	OverlayBorderColor        = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#8C8C8C"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	ValidIconStyle   = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	InvalidIconStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	FieldHintStyle   = lipgloss.NewStyle().Foreground(StatusErrorColor)
	RequiredStyle    = lipgloss.NewStyle().Foreground(RequiredMarkColor)
	SendingStyle     = lipgloss.NewStyle().Foreground(StatusWarningColor).Italic(true)
	FooterStyle      = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Page title
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextPrimaryColor).
			Bold(true).
			Padding(0, 1)
)

// ApplyAccent replaces the focus color used for focused inputs and the
// focused SEND button. An empty string keeps the default.
func ApplyAccent(accent string) {
	if accent == "" {
		return
	}
	c := lipgloss.AdaptiveColor{Light: accent, Dark: accent}
	FormTextInputFocusedBorderColor = c
	ButtonPrimaryFocusBgColor = c
	PrimaryButtonFocusedStyle = PrimaryButtonFocusedStyle.Background(c)
}
