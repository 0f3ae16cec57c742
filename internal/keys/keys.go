// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// FormKeyMap defines the keybindings for the registration form.
type FormKeyMap struct {
	// Navigation
	Next key.Binding
	Prev key.Binding

	// Actions
	Enter  key.Binding
	Submit key.Binding

	// General
	Help    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// Form is the keymap used by the registration form and the app shell.
var Form = DefaultFormKeyMap()

// DefaultFormKeyMap returns the default keybindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		// Navigation
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "ctrl+n"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "ctrl+p"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),

		// Actions
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next field / send"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the footer.
func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the help screen.
func (k FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},            // Navigation
		{k.Enter, k.Submit},         // Actions
		{k.Help, k.Dismiss, k.Quit}, // General
	}
}
