package ui

import (
	"reflect"
	"time"

	"deskfolio/internal/apps"
	"deskfolio/internal/config/profile"
	"deskfolio/internal/desktop"
	"deskfolio/internal/dock"
	"deskfolio/internal/logging/events"
	"deskfolio/internal/menubar"
	"deskfolio/internal/registry"
	"deskfolio/internal/theme"
	"deskfolio/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	clockInterval = time.Second
	frameInterval = 50 * time.Millisecond
	footerHint    = "ctrl+c quit · esc close · tab cycle · drag a title bar to move"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type clockTickMsg time.Time

type frameMsg time.Time

// openShortcuts maps root keybindings to the window they open. A focused
// window gets first crack at every key, so these only fire when the key
// falls through.
var openShortcuts = map[string]registry.ID{
	"ctrl+f": registry.Finder,
	"ctrl+t": registry.Terminal,
	"ctrl+e": registry.Contact,
	"ctrl+r": registry.Resume,
	"ctrl+b": registry.Safari,
	"ctrl+p": registry.Photos,
}

// Model implements the Bubble Tea model for the desktop.
type Model struct {
	reg     *registry.Registry
	ctrl    *desktop.Controller
	catalog *apps.Catalog
	dock    *dock.Dock
	bar     *menubar.MenuBar
	bus     *command.Bus

	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	now          time.Time
	frameTicking bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over an already-wired registry and lifecycle
// controller.
func NewModel(reg *registry.Registry, ctrl *desktop.Controller, prof profile.Profile, width, height int, showFooter bool) *Model {
	catalog := apps.NewCatalog(reg, prof)
	items := make([]registry.ID, 0, len(prof.Dock))
	for _, entry := range prof.Dock {
		id := registry.ID(entry)
		if reg.Knows(id) {
			items = append(items, id)
		}
	}
	m := &Model{
		reg:        reg,
		ctrl:       ctrl,
		catalog:    catalog,
		dock:       dock.New(reg, items, catalog.Title),
		bar:        menubar.New(prof.Owner.Name),
		bus:        command.New(),
		showFooter: showFooter,
		now:        time.Now(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if m.width > 0 && m.height > 0 {
		m.ctrl.SetBounds(m.width, m.canvasHeight())
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return clockCmd()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(clockTickMsg{}):      m.handleClockTickMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.App.Resize(m.width, m.height)
	m.ctrl.SetBounds(m.width, m.canvasHeight())
	return nil
}

func (m *Model) handleClockTickMsg(msg tea.Msg) tea.Cmd {
	m.now = time.Time(msg.(clockTickMsg))
	return clockCmd()
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	m.frameTicking = false
	m.ctrl.StepAnimations()
	return m.armFrames()
}

// armFrames starts the animation ticker when entrance frames are pending and
// the ticker is not already running.
func (m *Model) armFrames() tea.Cmd {
	if m.frameTicking || !m.ctrl.Animating() {
		return nil
	}
	m.frameTicking = true
	return frameCmd()
}

func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// canvasHeight is the desktop surface between the menu bar and the dock.
func (m *Model) canvasHeight() int {
	h := m.height - 2
	if m.showFooter {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

// dockRow is the terminal row the dock occupies.
func (m *Model) dockRow() int {
	row := m.height - 1
	if m.showFooter {
		row--
	}
	return row
}
