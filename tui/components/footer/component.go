package footer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Component renders a one-line key hint bar
type Component struct {
	style lipgloss.Style
}

// New creates a new footer component
func New() *Component {
	return &Component{
		style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00aa00")). // Darker green (secondary)
			Faint(true),
	}
}

// View renders the enabled bindings using their help text
func (c *Component) View(bindings ...key.Binding) string {
	var parts []string
	for _, binding := range bindings {
		if part := Format(binding); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	return c.style.Render(strings.Join(parts, "  "))
}

// Format renders a binding as "[key] description", or "" when it has no help or is disabled
func Format(binding key.Binding) string {
	help := binding.Help()
	if !binding.Enabled() || help.Key == "" || help.Desc == "" {
		return ""
	}
	return "[" + help.Key + "] " + help.Desc
}
