package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestExecuteRunsAction(t *testing.T) {
	bus := New()
	ran := false
	cmd := bus.Execute(Request{ID: "test", Run: func() tea.Msg {
		ran = true
		return nil
	}})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil msg, got %v", msg)
	}
	if !ran {
		t.Fatalf("action never ran")
	}
}

func TestExecuteForwardsMessage(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "quit", Run: tea.Quit})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestExecuteNilRunIsSafe(t *testing.T) {
	bus := New()
	if msg := bus.Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil msg for empty request, got %v", msg)
	}
}
