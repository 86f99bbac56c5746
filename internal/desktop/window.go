// Package desktop binds registry state to presentation: each window gets a
// lifecycle that tracks geometry, visibility, layering, and its entrance
// transition, and the controller keeps every lifecycle in sync with the
// registry through a subscription. The compositor in this package paints the
// resulting scene.
package desktop

import (
	"sort"

	"deskfolio/internal/logging/events"
	"deskfolio/internal/registry"
)

// entranceFrames is the length of the one-shot entrance transition. The
// transition replays on every reopen; it is purely cosmetic.
const entranceFrames = 4

// Lifecycle is the presentation state of one window: geometry, visibility,
// layering value, and the remaining entrance frames.
type Lifecycle struct {
	ID      registry.ID
	X, Y    int
	W, H    int
	Visible bool
	Z       int

	entrance int
}

// Entering reports whether the entrance transition is still playing.
func (l *Lifecycle) Entering() bool {
	return l.entrance > 0
}

// EntranceScale returns the current scale of the entrance transition in the
// range (0, 1]; 1 means settled.
func (l *Lifecycle) EntranceScale() float64 {
	if l.entrance <= 0 {
		return 1
	}
	return float64(entranceFrames-l.entrance+1) / float64(entranceFrames+1)
}

// geometry is the resting frame a window returns to when it reopens.
type geometry struct {
	x, y, w, h int
}

var homeGeometry = map[registry.ID]geometry{
	registry.Finder:   {x: 6, y: 2, w: 44, h: 14},
	registry.Terminal: {x: 12, y: 4, w: 50, h: 14},
	registry.Contact:  {x: 18, y: 3, w: 38, h: 11},
	registry.Resume:   {x: 10, y: 2, w: 48, h: 16},
	registry.Safari:   {x: 8, y: 3, w: 52, h: 15},
	registry.Photos:   {x: 16, y: 2, w: 42, h: 13},
	registry.TxtFile:  {x: 22, y: 5, w: 40, h: 12},
	registry.ImgFile:  {x: 26, y: 4, w: 36, h: 12},
}

// Controller owns one lifecycle per known window and mirrors registry state
// into them. It also brokers the drag gesture: a press focuses the window
// under the pointer and, on the title row, starts a drag.
type Controller struct {
	reg      *registry.Registry
	windows  map[registry.ID]*Lifecycle
	unsub    func()
	boundsW  int
	boundsH  int
	dragID   registry.ID
	dragOffX int
	dragOffY int
	dragLive bool
}

// NewController builds lifecycles for every known window and subscribes to
// the registry. Close must be called to release the subscription.
func NewController(reg *registry.Registry) *Controller {
	c := &Controller{
		reg:     reg,
		windows: make(map[registry.ID]*Lifecycle, len(registry.Known())),
	}
	for _, id := range registry.Known() {
		home, ok := homeGeometry[id]
		if !ok {
			home = geometry{x: 4, y: 2, w: 40, h: 12}
		}
		c.windows[id] = &Lifecycle{
			ID: id,
			X:  home.x, Y: home.y,
			W: home.w, H: home.h,
		}
	}
	c.unsub = reg.Subscribe(c.syncFromRegistry)
	c.syncFromRegistry()
	return c
}

// Close releases the registry subscription and any in-flight drag. Safe to
// call more than once.
func (c *Controller) Close() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
	c.dragLive = false
}

// syncFromRegistry re-derives every lifecycle from the registry. The
// hidden-to-visible transition arms the entrance animation.
func (c *Controller) syncFromRegistry() {
	for id, lc := range c.windows {
		win, ok := c.reg.Window(id)
		if !ok {
			continue
		}
		wasVisible := lc.Visible
		lc.Visible = win.Open
		lc.Z = win.StackOrder
		if win.Open && !wasVisible {
			lc.entrance = entranceFrames
		}
		if !win.Open {
			lc.entrance = 0
			if c.dragLive && c.dragID == id {
				c.dragLive = false
			}
		}
	}
}

// Window returns the lifecycle for id, or nil for unknown identifiers.
func (c *Controller) Window(id registry.ID) *Lifecycle {
	return c.windows[id]
}

// VisibleByStack returns the visible lifecycles in ascending stack order,
// i.e. back to front.
func (c *Controller) VisibleByStack() []*Lifecycle {
	out := make([]*Lifecycle, 0, len(c.windows))
	for _, lc := range c.windows {
		if lc.Visible {
			out = append(out, lc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// HitTest returns the topmost visible window containing the point.
func (c *Controller) HitTest(x, y int) (registry.ID, bool) {
	stack := c.VisibleByStack()
	for i := len(stack) - 1; i >= 0; i-- {
		lc := stack[i]
		if x >= lc.X && x < lc.X+lc.W && y >= lc.Y && y < lc.Y+lc.H {
			return lc.ID, true
		}
	}
	return "", false
}

// PressAt handles a gesture press. Any press on a window focuses it; a press
// on the title row additionally begins a drag. Reports whether a window was
// hit.
func (c *Controller) PressAt(x, y int) bool {
	id, ok := c.HitTest(x, y)
	if !ok {
		return false
	}
	c.reg.Focus(id)
	lc := c.windows[id]
	if y == lc.Y {
		c.dragID = id
		c.dragOffX = x - lc.X
		c.dragOffY = y - lc.Y
		c.dragLive = true
		events.Window.DragStart(string(id), x, y)
	}
	return true
}

// DragTo moves the dragged window so the grab point follows the pointer,
// clamped into the desktop bounds. No-op when no drag is live.
func (c *Controller) DragTo(x, y int) {
	if !c.dragLive {
		return
	}
	lc := c.windows[c.dragID]
	lc.X = x - c.dragOffX
	lc.Y = y - c.dragOffY
	c.clamp(lc)
}

// Release ends a live drag.
func (c *Controller) Release() {
	if !c.dragLive {
		return
	}
	lc := c.windows[c.dragID]
	events.Window.DragEnd(string(c.dragID), lc.X, lc.Y)
	c.dragLive = false
}

// Dragging reports the window currently being dragged, if any.
func (c *Controller) Dragging() (registry.ID, bool) {
	return c.dragID, c.dragLive
}

// SetBounds records the desktop area and pulls stray windows back inside it.
func (c *Controller) SetBounds(w, h int) {
	c.boundsW = w
	c.boundsH = h
	for _, lc := range c.windows {
		c.clamp(lc)
	}
}

func (c *Controller) clamp(lc *Lifecycle) {
	if c.boundsW <= 0 || c.boundsH <= 0 {
		return
	}
	// Keep at least the title row reachable.
	if lc.X < -lc.W+2 {
		lc.X = -lc.W + 2
	}
	if lc.X > c.boundsW-2 {
		lc.X = c.boundsW - 2
	}
	if lc.Y < 0 {
		lc.Y = 0
	}
	if lc.Y > c.boundsH-1 {
		lc.Y = c.boundsH - 1
	}
}

// Animating reports whether any entrance transition is still playing.
func (c *Controller) Animating() bool {
	for _, lc := range c.windows {
		if lc.Entering() {
			return true
		}
	}
	return false
}

// StepAnimations advances every live entrance transition by one frame and
// reports whether any remain.
func (c *Controller) StepAnimations() bool {
	for _, lc := range c.windows {
		if lc.entrance > 0 {
			lc.entrance--
		}
	}
	return c.Animating()
}
