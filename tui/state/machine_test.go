package state

import (
	"testing"
)

func TestMachine_Transition(t *testing.T) {
	// Arrange
	m := NewMachine(Login)

	// Act
	cmd := m.Transition(Profile)

	// Assert
	if m.Current() != Profile {
		t.Errorf("Expected Profile, got %s", m.Current())
	}
	msg, ok := cmd().(TransitionMsg)
	if !ok {
		t.Fatalf("Expected TransitionMsg, got %T", cmd())
	}
	if msg.Transition.String() != "Login -> Profile" {
		t.Errorf("Unexpected transition %s", msg.Transition)
	}
	if len(m.History()) != 2 {
		t.Errorf("Expected 2 history entries, got %d", len(m.History()))
	}
}

func TestMachine_Transition_Invalid(t *testing.T) {
	m := NewMachine(Login)

	cmd := m.Transition(Screen(99))

	if m.Current() != Login {
		t.Errorf("Expected to stay on Login, got %s", m.Current())
	}
	if _, ok := cmd().(ErrorMsg); !ok {
		t.Errorf("Expected ErrorMsg, got %T", cmd())
	}
}

func TestMachine_Reset(t *testing.T) {
	m := NewMachine(Login)
	m.Transition(Profile)

	m.Reset(Login)

	if m.Current() != Login {
		t.Errorf("Expected Login, got %s", m.Current())
	}
	if len(m.History()) != 1 {
		t.Errorf("Expected history to be cleared, got %v", m.History())
	}
}

func TestScreen_String(t *testing.T) {
	if Screen(7).String() != "Unknown(7)" {
		t.Errorf("Unexpected string %q", Screen(7).String())
	}
	if !Profile.IsValid() || Screen(-1).IsValid() {
		t.Error("Unexpected IsValid result")
	}
}
