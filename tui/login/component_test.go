package login

import (
	"errors"
	"strings"
	"testing"
	"time"

	"octodash-cli/auth"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestComponent(t *testing.T, repo *mockRepository) (*Component, *ViewModel) {
	t.Helper()
	vm := newTestViewModel(t, repo, WithoutAutoLogin())
	return New(vm), vm
}

func TestComponent_New(t *testing.T) {
	// Arrange & Act
	component, _ := newTestComponent(t, &mockRepository{})

	// Assert
	if len(component.inputs) != 2 {
		t.Errorf("Expected 2 inputs, got %d", len(component.inputs))
	}
	if component.focusIdx != 0 {
		t.Errorf("Expected focus index to be 0, got %d", component.focusIdx)
	}
	if component.Init() == nil {
		t.Error("Expected Init to return a command")
	}
}

func TestComponent_Update_TabNavigation(t *testing.T) {
	// Arrange
	component, _ := newTestComponent(t, &mockRepository{})

	// Act - press tab
	updated, _ := component.Update(tea.KeyMsg{Type: tea.KeyTab})

	// Assert - focus should move to token field (index 1)
	if updated.focusIdx != 1 {
		t.Errorf("Expected focus on input 1 after tab, got %d", updated.focusIdx)
	}

	// Act - press tab again
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})

	// Assert - focus should wrap around to username field (index 0)
	if updated.focusIdx != 0 {
		t.Errorf("Expected focus to wrap to input 0, got %d", updated.focusIdx)
	}

	// Act - shift+tab wraps backwards
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyShiftTab})

	// Assert
	if updated.focusIdx != 1 {
		t.Errorf("Expected shift+tab to wrap to input 1, got %d", updated.focusIdx)
	}
}

func TestComponent_Update_EnterOnUsernameMovesFocus(t *testing.T) {
	// Arrange
	repo := &mockRepository{}
	component, _ := newTestComponent(t, repo)

	// Act
	updated, _ := component.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Assert
	if updated.focusIdx != 1 {
		t.Errorf("Expected focus on input 1 after enter, got %d", updated.focusIdx)
	}
	if len(repo.loginCalls()) != 0 {
		t.Error("Expected no login attempt from the username field")
	}
}

func TestComponent_Update_SubmitLogsIn(t *testing.T) {
	// Arrange
	repo := &mockRepository{}
	component, vm := newTestComponent(t, repo)
	component.inputs[0].SetValue("octocat")
	component.inputs[1].SetValue("pat")
	component.focusIdx = 1

	// Act
	component.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Assert
	deadline := time.Now().Add(receiveTimeout)
	for vm.CurrentViewState().LoginInfo == nil {
		if time.Now().After(deadline) {
			t.Fatal("Expected login to complete")
		}
		time.Sleep(5 * time.Millisecond)
	}
	calls := repo.loginCalls()
	if len(calls) != 1 || calls[0].username != "octocat" || calls[0].password != "pat" {
		t.Errorf("Unexpected login calls %+v", calls)
	}
}

func TestComponent_Update_SubmitIgnoredWhileLoading(t *testing.T) {
	// Arrange
	repo := &mockRepository{}
	component, _ := newTestComponent(t, repo)
	component.inputs[0].SetValue("octocat")
	component.inputs[1].SetValue("pat")
	component.focusIdx = 1
	component.state = ViewState{IsLoading: true}

	// Act
	component.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Assert
	if len(repo.loginCalls()) != 0 {
		t.Error("Expected no second attempt while loading")
	}
}

func TestComponent_Update_TypingGoesToFocusedInput(t *testing.T) {
	// Arrange
	component, _ := newTestComponent(t, &mockRepository{})

	// Act
	component.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("octo")})

	// Assert
	if component.GetUsername() != "octo" {
		t.Errorf("Expected username 'octo', got '%s'", component.GetUsername())
	}
	if component.GetPassword() != "" {
		t.Errorf("Expected empty token, got '%s'", component.GetPassword())
	}
}

func TestComponent_Update_ViewStateMsg(t *testing.T) {
	// Arrange
	component, _ := newTestComponent(t, &mockRepository{})
	state := ViewState{Err: errors.New("bad credentials")}

	// Act
	updated, cmd := component.Update(ViewStateMsg{State: state})

	// Assert
	if !updated.State().Equal(state) {
		t.Errorf("Expected state to be stored, got %+v", updated.State())
	}
	if cmd == nil {
		t.Error("Expected the component to keep listening for states")
	}
}

func TestComponent_Update_AutoLoginPrefill(t *testing.T) {
	// Arrange
	component, vm := newTestComponent(t, &mockRepository{})
	event := &auth.AutoLoginEvent{Enabled: true, Username: "octocat", Password: "pat"}
	vm.store.Update(func(s ViewState) ViewState {
		s.AutoLoginEvent = event
		s.UseAutoLoginEvent = true
		return s
	})

	// Act
	component.Update(ViewStateMsg{State: vm.CurrentViewState()})

	// Assert
	if component.GetUsername() != "octocat" || component.GetPassword() != "pat" {
		t.Errorf("Expected form to be prefilled, got %q/%q", component.GetUsername(), component.GetPassword())
	}
	if vm.CurrentViewState().UseAutoLoginEvent {
		t.Error("Expected the event to be marked as used")
	}

	// A second delivery of the same event does not overwrite user edits
	component.inputs[0].SetValue("edited")
	component.Update(ViewStateMsg{State: ViewState{AutoLoginEvent: event, UseAutoLoginEvent: true}})
	if component.GetUsername() != "edited" {
		t.Errorf("Expected edits to survive, got %q", component.GetUsername())
	}
}

func TestComponent_Reset(t *testing.T) {
	component, _ := newTestComponent(t, &mockRepository{})
	component.inputs[0].SetValue("octocat")
	component.inputs[1].SetValue("pat")
	component.focusIdx = 1

	component.Reset()

	if component.GetUsername() != "" || component.GetPassword() != "" {
		t.Error("Expected inputs to be cleared")
	}
	if component.focusIdx != 0 {
		t.Errorf("Expected focus on input 0, got %d", component.focusIdx)
	}
}

func TestComponent_View_ContainsExpectedElements(t *testing.T) {
	// Arrange
	component, _ := newTestComponent(t, &mockRepository{})

	// Act
	view := component.View()

	// Assert - focus on functional elements
	for _, element := range []string{"Username:", "Token:", "tab", "enter", "submit"} {
		if !strings.Contains(view, element) {
			t.Errorf("Expected view to contain '%s'", element)
		}
	}
}

func TestComponent_View_ShowsError(t *testing.T) {
	// Arrange
	component, _ := newTestComponent(t, &mockRepository{})
	component.state = ViewState{Err: auth.ErrEmptyInput}

	// Act
	view := component.View()

	// Assert
	if !strings.Contains(view, auth.ErrEmptyInput.Error()) {
		t.Error("Expected view to contain error message")
	}
}

func TestComponent_View_ShowsLoggingIn(t *testing.T) {
	// Arrange
	component, _ := newTestComponent(t, &mockRepository{})
	component.state = ViewState{IsLoading: true}

	// Act
	view := component.View()

	// Assert
	if !strings.Contains(view, "Logging in...") {
		t.Error("Expected view to contain 'Logging in...' message")
	}
}
