package ui

import (
	"deskfolio/internal/apps"
	"deskfolio/internal/logging/events"
	"deskfolio/internal/registry"
	"deskfolio/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)

	if key.String() == "ctrl+c" {
		return m.quit()
	}

	// The focused window consumes keys first so typing into the terminal
	// or finder never triggers a root binding.
	if top, ok := m.reg.Top(); ok {
		if app, found := m.catalog.App(top); found {
			if ia, interactive := app.(apps.Interactive); interactive && ia.HandleKey(key) {
				return m.armFrames()
			}
		}
	}

	switch key.String() {
	case "esc":
		return m.closeActive()
	case "tab":
		m.cycleFocus()
		return nil
	}

	if id, ok := openShortcuts[key.String()]; ok {
		m.reg.Open(id, nil)
		events.Window.Open(string(id), nil)
		return m.armFrames()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:    "desktop.quit",
		Label: "quit",
		Run: func() tea.Msg {
			events.App.Quit()
			return tea.Quit()
		},
	})
}

func (m *Model) closeActive() tea.Cmd {
	top, ok := m.reg.Top()
	if !ok {
		return nil
	}
	return m.bus.Execute(command.Request{
		ID:    "window.close",
		Label: m.catalog.Title(top),
		Run: func() tea.Msg {
			m.reg.Close(top)
			events.Window.Close(string(top))
			return nil
		},
	})
}

// cycleFocus raises the bottom-most visible window, walking the stack over
// repeated presses.
func (m *Model) cycleFocus() {
	stack := m.ctrl.VisibleByStack()
	if len(stack) < 2 {
		return
	}
	id := stack[0].ID
	m.reg.Focus(id)
	m.traceFocus(id)
}

func (m *Model) traceFocus(id registry.ID) {
	if w, ok := m.reg.Window(id); ok {
		events.Window.Focus(string(id), w.StackOrder)
	}
}
