// Package dock renders the row of app icons along the bottom of the desktop
// and maps pointer positions back to apps. Hovering magnifies neighbouring
// icons with a Gaussian falloff, the same weighting the menu bar uses for its
// hover highlight.
package dock

import (
	"math"
	"strings"

	"deskfolio/internal/logging/events"
	"deskfolio/internal/registry"
	"deskfolio/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

var styles = theme.Default()

// falloffSigma controls how quickly magnification decays with distance from
// the hovered icon.
const falloffSigma = 1.5

// maxMagnify is the extra padding (in cells, per side) a fully magnified icon
// receives.
const maxMagnify = 2

// Falloff returns the Gaussian weight for an icon at the given distance from
// the hover point: 1 at the centre, approaching 0 further out.
func Falloff(distance, sigma float64) float64 {
	return math.Exp(-(distance * distance) / (2 * sigma * sigma))
}

// Dock is the clickable icon strip. Hover state feeds the magnification;
// open state comes from the registry on every render.
type Dock struct {
	reg     *registry.Registry
	items   []registry.ID
	titleOf func(registry.ID) string
	hover   int
}

// New builds a dock over the given item order. titleOf supplies labels.
func New(reg *registry.Registry, items []registry.ID, titleOf func(registry.ID) string) *Dock {
	return &Dock{reg: reg, items: items, titleOf: titleOf, hover: -1}
}

// Items returns the dock's item order.
func (d *Dock) Items() []registry.ID {
	out := make([]registry.ID, len(d.items))
	copy(out, d.items)
	return out
}

type span struct {
	id    registry.ID
	start int
	width int
}

// layout computes each item's horizontal span under the current hover state.
// View and ItemAt share it so rendering and hit testing cannot drift.
func (d *Dock) layout() []span {
	spans := make([]span, len(d.items))
	x := 1
	for i, id := range d.items {
		label := d.titleOf(id)
		pad := 1
		if d.hover >= 0 {
			weight := Falloff(float64(i-d.hover), falloffSigma)
			pad += int(weight*maxMagnify + 0.5)
		}
		w := len([]rune(label)) + 2*pad + 1 // +1 for the indicator column
		spans[i] = span{id: id, start: x, width: w}
		x += w
	}
	return spans
}

// SetHover records the hovered column; out-of-dock positions clear it.
func (d *Dock) SetHover(x int) {
	idx := -1
	for i, s := range d.layout() {
		if x >= s.start && x < s.start+s.width {
			idx = i
			break
		}
	}
	if idx != d.hover {
		d.hover = idx
		if idx >= 0 {
			events.Dock.Hover(idx)
		}
	}
}

// ClearHover resets magnification.
func (d *Dock) ClearHover() {
	d.hover = -1
}

// ItemAt resolves the item under column x.
func (d *Dock) ItemAt(x int) (registry.ID, bool) {
	for _, s := range d.layout() {
		if x >= s.start && x < s.start+s.width {
			return s.id, true
		}
	}
	return "", false
}

// Click dispatches a press at column x: a closed app opens, an open app comes
// to the front, and a click on the app already in front closes it. Reports
// whether an item was hit.
func (d *Dock) Click(x int) bool {
	id, ok := d.ItemAt(x)
	if !ok {
		return false
	}
	open := d.reg.IsOpen(id)
	events.Dock.Click(string(id), open)
	switch {
	case !open:
		d.reg.Open(id, nil)
	case d.isTop(id):
		d.reg.Close(id)
	default:
		d.reg.Focus(id)
	}
	return true
}

func (d *Dock) isTop(id registry.ID) bool {
	top, ok := d.reg.Top()
	return ok && top == id
}

// View renders the dock as a single row, padded to width. Open apps carry an
// indicator dot beside their label.
func (d *Dock) View(width int) string {
	var b strings.Builder
	b.WriteString(styles.Dock.Render(" "))
	for i, s := range d.layout() {
		label := d.titleOf(s.id)
		pad := (s.width - len([]rune(label)) - 1) / 2
		indicator := " "
		if d.reg.IsOpen(s.id) {
			indicator = styles.DockIndicator.Render("•")
		}
		style := styles.DockIcon
		if d.reg.IsOpen(s.id) {
			style = styles.DockIconOpen
		}
		if i == d.hover {
			style = styles.DockIconOpen
		}
		cell := strings.Repeat(" ", pad) + label + strings.Repeat(" ", s.width-len([]rune(label))-1-pad)
		b.WriteString(indicator)
		b.WriteString(style.Render(cell))
	}
	row := b.String()
	if w := ansi.StringWidth(row); w < width {
		row += styles.Dock.Render(strings.Repeat(" ", width-w))
	}
	return row
}
