package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GlobalKeyMap defines the key bindings used across the application.
// Printable keys are only bound on screens without text inputs.
type GlobalKeyMap struct {
	Quit            key.Binding
	Tab             key.Binding
	Submit          key.Binding
	Logout          key.Binding
	ToggleAutoLogin key.Binding
}

// DefaultGlobalKeys returns the default key bindings
func DefaultGlobalKeys() GlobalKeyMap {
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Logout: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "log out"),
		),
		ToggleAutoLogin: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle auto-login"),
		),
	}
}

// Handler provides a centralized way to match key messages
type Handler struct {
	keys GlobalKeyMap
}

// NewHandler creates a new key handler with default bindings
func NewHandler() *Handler {
	return &Handler{
		keys: DefaultGlobalKeys(),
	}
}

// Keys returns the bindings the handler matches against
func (h *Handler) Keys() GlobalKeyMap {
	return h.keys
}

// IsQuit returns true if the key message is a quit command
func (h *Handler) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Quit)
}

// IsTab returns true if the key message moves focus
func (h *Handler) IsTab(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Tab)
}

// IsSubmit returns true if the key message submits the form
func (h *Handler) IsSubmit(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Submit)
}

// IsLogout returns true if the key message logs out
func (h *Handler) IsLogout(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Logout)
}

// IsToggleAutoLogin returns true if the key message flips the auto-login setting
func (h *Handler) IsToggleAutoLogin(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.ToggleAutoLogin)
}

// Login returns the footer bindings for the login screen
func (h *Handler) Login() []key.Binding {
	return []key.Binding{h.keys.Tab, h.keys.Submit, h.keys.Quit}
}

// Profile returns the footer bindings for the profile screen
func (h *Handler) Profile() []key.Binding {
	return []key.Binding{h.keys.ToggleAutoLogin, h.keys.Logout, h.keys.Quit}
}
