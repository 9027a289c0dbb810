package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies what the TUI is currently showing
type Screen int

const (
	// Login - credentials form, also shown while auto-login runs
	Login Screen = iota

	// Profile - signed-in account details
	Profile
)

// String returns a human-readable representation of the screen
func (s Screen) String() string {
	switch s {
	case Login:
		return "Login"
	case Profile:
		return "Profile"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// IsValid checks if the screen is a known screen
func (s Screen) IsValid() bool {
	return s >= Login && s <= Profile
}

// Transition represents a screen change
type Transition struct {
	From Screen
	To   Screen
}

// String returns a human-readable representation of the transition
func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// Machine tracks the current screen and how we got there
type Machine struct {
	current Screen
	history []Screen
}

// NewMachine creates a new state machine with the given initial screen
func NewMachine(initial Screen) *Machine {
	return &Machine{
		current: initial,
		history: []Screen{initial},
	}
}

// Current returns the current screen
func (m *Machine) Current() Screen {
	return m.current
}

// Transition moves to a new screen and reports it as a TransitionMsg
func (m *Machine) Transition(to Screen) tea.Cmd {
	if !to.IsValid() {
		return func() tea.Msg {
			return ErrorMsg{
				Error: fmt.Errorf("invalid state transition to %s", to),
			}
		}
	}

	transition := Transition{From: m.current, To: to}
	m.current = to
	m.history = append(m.history, to)

	return func() tea.Msg {
		return TransitionMsg{Transition: transition}
	}
}

// History returns a copy of the screen history
func (m *Machine) History() []Screen {
	history := make([]Screen, len(m.history))
	copy(history, m.history)
	return history
}

// Reset returns to the given screen and forgets the history
func (m *Machine) Reset(initial Screen) tea.Cmd {
	transition := Transition{From: m.current, To: initial}
	m.current = initial
	m.history = []Screen{initial}

	return func() tea.Msg {
		return TransitionMsg{Transition: transition}
	}
}

// Messages for state machine events
type (
	// TransitionMsg is sent when a screen change occurs
	TransitionMsg struct {
		Transition Transition
	}

	// ErrorMsg is sent when a state machine error occurs
	ErrorMsg struct {
		Error error
	}
)
