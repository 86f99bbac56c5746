// Package apps provides the content each desktop window shows: the finder,
// the terminal, the static portfolio pages, and the file viewers. Apps render
// into plain lines; the desktop compositor handles chrome and layering.
package apps

import (
	"deskfolio/internal/config/profile"
	"deskfolio/internal/registry"
	tea "github.com/charmbracelet/bubbletea"
)

// App renders the body of one window. Payload is the window's registry
// payload at render time; width and height are the inner dimensions.
type App interface {
	ID() registry.ID
	Title() string
	Render(payload map[string]string, width, height int) []string
}

// Interactive is implemented by apps that consume key input while their
// window is focused. The return value reports whether the key was consumed.
type Interactive interface {
	HandleKey(msg tea.KeyMsg) bool
}

// Catalog holds every app keyed by window identifier.
type Catalog struct {
	apps map[registry.ID]App
}

// NewCatalog wires all apps against the registry and profile.
func NewCatalog(reg *registry.Registry, prof profile.Profile) *Catalog {
	c := &Catalog{apps: make(map[registry.ID]App)}
	add := func(a App) { c.apps[a.ID()] = a }

	add(NewFinder(reg, prof))
	add(NewTerminal(reg, prof))
	add(newContact(prof))
	add(newResume(prof))
	add(newSafari(prof))
	add(newPhotos(prof))
	add(newTextViewer(prof))
	add(newImageViewer(prof))
	return c
}

// App returns the app bound to id.
func (c *Catalog) App(id registry.ID) (App, bool) {
	a, ok := c.apps[id]
	return a, ok
}

// Title returns the window title for id, falling back to the identifier.
func (c *Catalog) Title(id registry.ID) string {
	if a, ok := c.apps[id]; ok {
		return a.Title()
	}
	return string(id)
}
