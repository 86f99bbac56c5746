package ui

import (
	"deskfolio/internal/menubar"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)

	switch mouse.Action {
	case tea.MouseActionMotion:
		return m.handleMouseMotion(mouse)
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.handleMousePress(mouse)
	case tea.MouseActionRelease:
		m.ctrl.Release()
	}
	return nil
}

func (m *Model) handleMouseMotion(mouse tea.MouseMsg) tea.Cmd {
	if _, dragging := m.ctrl.Dragging(); dragging {
		m.ctrl.DragTo(mouse.X, mouse.Y-1)
		return nil
	}

	switch {
	case mouse.Y == 0:
		m.bar.SetHover(mouse.X)
		m.dock.ClearHover()
	case mouse.Y == m.dockRow():
		m.dock.SetHover(mouse.X)
		m.bar.ClearHover()
	default:
		m.bar.ClearHover()
		m.dock.ClearHover()
	}
	return nil
}

func (m *Model) handleMousePress(mouse tea.MouseMsg) tea.Cmd {
	switch {
	case mouse.Y == 0:
		switch m.bar.Click(mouse.X) {
		case menubar.ActionQuit:
			return m.quit()
		case menubar.ActionCloseActive:
			return m.closeActive()
		}
	case mouse.Y == m.dockRow():
		if m.dock.Click(mouse.X) {
			return m.armFrames()
		}
	default:
		if m.ctrl.PressAt(mouse.X, mouse.Y-1) {
			if top, ok := m.reg.Top(); ok {
				m.traceFocus(top)
			}
		}
	}
	return nil
}
