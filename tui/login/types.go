package login

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ViewStateMsg delivers a new ViewState from the view model to the component
type ViewStateMsg struct {
	State ViewState
}

// WaitForViewState blocks on the next state from states.
// It returns nil once the stream is closed, which ends the listening loop.
func WaitForViewState(states <-chan ViewState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return ViewStateMsg{State: state}
	}
}
