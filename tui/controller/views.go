package controller

import (
	"octodash-cli/tui/state"
	"octodash-cli/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current screen
func (c *Controller) View() string {
	if c.quitting {
		return c.renderQuitting()
	}

	view := styles.Banner(c.version) + "\n"
	switch c.stateMachine.Current() {
	case state.Login:
		view += c.loginComponent.View()
	case state.Profile:
		view += c.profileComponent.View()
	}

	if c.errorMsg != "" {
		view += "\n" + styles.ErrorStyle.Render(c.errorMsg)
	}
	return view + "\n"
}

func (c *Controller) renderQuitting() string {
	return lipgloss.NewStyle().
		Foreground(styles.ErrorColor).
		Bold(true).
		Render("Goodbye!") + "\n"
}
