package ui

import (
	"strings"

	"deskfolio/internal/desktop"
	"deskfolio/internal/registry"
)

// View renders the menu bar, the desktop canvas, and the dock as stacked
// rows. Before the first size message arrives there is nothing to draw.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	active := ""
	focused := registry.ID("")
	if top, ok := m.reg.Top(); ok {
		active = m.catalog.Title(top)
		focused = top
	}

	var b strings.Builder
	b.WriteString(m.bar.View(m.width, active, m.now))
	b.WriteString("\n")
	b.WriteString(desktop.Compose(m.ctrl.VisibleByStack(), focused, m.contentFor, m.width, m.canvasHeight()))
	b.WriteString("\n")
	b.WriteString(m.dock.View(m.width))
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(footerHint))
	}
	return b.String()
}

func (m *Model) contentFor(id registry.ID, w, h int) (string, []string) {
	app, ok := m.catalog.App(id)
	if !ok {
		return string(id), nil
	}
	return app.Title(), app.Render(m.reg.Payload(id), w, h)
}
