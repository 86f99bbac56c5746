package command

import (
	"fmt"

	"deskfolio/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a desktop action invocation.
type Request struct {
	ID    string
	Label string
	Run   func() tea.Msg
}

// Bus coordinates the execution of desktop actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	logging.Trace("command.queue", map[string]interface{}{"id": req.ID, "label": req.Label})
	return func() tea.Msg {
		if req.Run == nil {
			logging.Trace("command.skip", map[string]interface{}{"id": req.ID})
			return nil
		}
		msg := req.Run()
		logging.Trace("command.result", map[string]interface{}{"id": req.ID, "msg": fmt.Sprintf("%T", msg)})
		return msg
	}
}
