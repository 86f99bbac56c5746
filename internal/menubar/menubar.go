// Package menubar renders the bar across the top of the desktop: desktop
// name, the active window's title, and a live clock, plus the close/quit
// controls. Hovering the name highlights letters around the pointer using the
// dock's Gaussian falloff.
package menubar

import (
	"strings"
	"time"

	"deskfolio/internal/dock"
	"deskfolio/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

var styles = theme.Default()

const (
	hoverSigma   = 2.0
	clockLayout  = "Mon Jan 2 15:04"
	closeControl = " ✕ "
	quitControl  = " ⏻ "
)

// Action is the result of a menu bar click.
type Action int

const (
	ActionNone Action = iota
	ActionCloseActive
	ActionQuit
)

// MenuBar holds hover state and the click regions of the last render.
type MenuBar struct {
	name      string
	hover     int
	width     int
	closeFrom int
	closeTo   int
	quitFrom  int
	quitTo    int
}

// New creates a menu bar titled with the desktop name.
func New(name string) *MenuBar {
	return &MenuBar{name: name, hover: -1, closeFrom: -1, quitFrom: -1}
}

// SetHover records the hovered column for the per-letter highlight.
func (m *MenuBar) SetHover(x int) {
	m.hover = x
}

// ClearHover removes the highlight.
func (m *MenuBar) ClearHover() {
	m.hover = -1
}

// Click resolves a press at column x against the regions of the last render.
func (m *MenuBar) Click(x int) Action {
	if m.closeFrom >= 0 && x >= m.closeFrom && x < m.closeTo {
		return ActionCloseActive
	}
	if m.quitFrom >= 0 && x >= m.quitFrom && x < m.quitTo {
		return ActionQuit
	}
	return ActionNone
}

// View renders the bar at the given width. active is the topmost open
// window's title, empty when nothing is open.
func (m *MenuBar) View(width int, active string, now time.Time) string {
	m.width = width
	left := " " + m.renderName() + "  "
	if active != "" {
		left += styles.MenuBar.Render("· ") + styles.MenuBarTitle.Render(active)
		leftW := ansi.StringWidth(left)
		m.closeFrom = leftW
		m.closeTo = leftW + ansi.StringWidth(closeControl)
		left += styles.MenuBar.Render(closeControl)
	} else {
		m.closeFrom, m.closeTo = -1, -1
	}

	clock := styles.Clock.Render(now.Format(clockLayout) + " ")
	quit := styles.MenuBar.Render(quitControl)
	rightW := ansi.StringWidth(clock) + ansi.StringWidth(quit)

	leftW := ansi.StringWidth(left)
	gap := width - leftW - rightW
	if gap < 1 {
		gap = 1
	}
	m.quitFrom = leftW + gap + ansi.StringWidth(clock)
	m.quitTo = m.quitFrom + ansi.StringWidth(quit)

	return left + styles.MenuBar.Render(strings.Repeat(" ", gap)) + clock + quit
}

// renderName styles the desktop name letter by letter: under a hover, letters
// near the pointer take the highlight style, weighted by the shared falloff.
func (m *MenuBar) renderName() string {
	runes := []rune(m.name)
	if m.hover < 0 {
		return styles.MenuBarTitle.Render(m.name)
	}
	var b strings.Builder
	for i, r := range runes {
		if m.highlighted(i) {
			b.WriteString(styles.MenuBarHover.Render(string(r)))
		} else {
			b.WriteString(styles.MenuBarTitle.Render(string(r)))
		}
	}
	return b.String()
}

// highlighted reports whether the letter at index i takes the hover style.
// Column 1 is where the name starts.
func (m *MenuBar) highlighted(i int) bool {
	if m.hover < 0 {
		return false
	}
	return dock.Falloff(float64(i+1-m.hover), hoverSigma) > 0.5
}
