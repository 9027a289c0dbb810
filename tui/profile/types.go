package profile

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LogoutMsg is sent when the user asks to sign out
type LogoutMsg struct{}

// AutoLoginToggledMsg carries the new auto-login setting
type AutoLoginToggledMsg struct {
	Enabled bool
}

// LogoutCommand creates a command that signals a logout request
func LogoutCommand() tea.Cmd {
	return func() tea.Msg {
		return LogoutMsg{}
	}
}

// AutoLoginToggledCommand creates a command that reports the new setting
func AutoLoginToggledCommand(enabled bool) tea.Cmd {
	return func() tea.Msg {
		return AutoLoginToggledMsg{Enabled: enabled}
	}
}
