package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	Primary    = lipgloss.Color("#00ff00") // Bright green
	Secondary  = lipgloss.Color("#00aa00") // Darker green
	Accent     = lipgloss.Color("#00ffaa") // Cyan-green
	ErrorColor = lipgloss.Color("#ff0000") // Red
)

const BoxWidth = 44

var (
	BoxStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 4).
			Width(BoxWidth)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Faint(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Accent)
)

// TableStyle is applied to bubble-table models
var TableStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Align(lipgloss.Left)

// Banner returns the header shown above every screen
func Banner(version string) string {
	art := `
  ____   ____ _____ ___  ____    _    ____  _   _
 / __ \ / ___|_   _/ _ \|  _ \  / \  / ___|| | | |
| |  | | |     | || | | | | | |/ _ \ \___ \| |_| |
| |__| | |___  | || |_| | |_| / ___ \ ___) |  _  |
 \____/ \____| |_| \___/|____/_/   \_\____/|_| |_|
`
	if version != "" {
		art += "\nVersion: " + version + "\n"
	}
	return lipgloss.NewStyle().Foreground(Primary).Render(art)
}
