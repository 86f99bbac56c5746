package apps

import (
	"fmt"
	"strings"

	"deskfolio/internal/config/profile"
	"deskfolio/internal/registry"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const terminalPrompt = "visitor@deskfolio $ "

// Terminal is a small command shell over the window registry: visitors can
// open, close, and inspect windows, or poke around the virtual files.
type Terminal struct {
	reg        *registry.Registry
	prof       profile.Profile
	input      textinput.Model
	scrollback []string
}

func NewTerminal(reg *registry.Registry, prof profile.Profile) *Terminal {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 96
	ti.Focus()
	return &Terminal{
		reg:   reg,
		prof:  prof,
		input: ti,
		scrollback: []string{
			"deskfolio shell - try `help`",
		},
	}
}

func (t *Terminal) ID() registry.ID { return registry.Terminal }
func (t *Terminal) Title() string   { return "Terminal" }

// HandleKey implements Interactive. Enter executes the current line; every
// other key is fed to the input field.
func (t *Terminal) HandleKey(msg tea.KeyMsg) bool {
	if msg.String() == "enter" {
		line := strings.TrimSpace(t.input.Value())
		t.input.SetValue("")
		t.Exec(line)
		return true
	}
	before := t.input.Value()
	t.input, _ = t.input.Update(msg)
	return t.input.Value() != before || msg.Type == tea.KeyRunes
}

// Exec runs one command line and appends its output to the scrollback.
func (t *Terminal) Exec(line string) {
	if line == "" {
		return
	}
	t.scrollback = append(t.scrollback, terminalPrompt+line)
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		t.echo(
			"open <app|file>   open a window or file",
			"close <app>       close a window",
			"focus <app>       bring a window to front",
			"stack             list open windows, front first",
			"ls                list files",
			"whoami            about the owner",
			"clear             clear the screen",
		)
	case "ls":
		for _, f := range t.prof.Files {
			t.echo(f.Name)
		}
	case "whoami":
		t.echo(fmt.Sprintf("%s - %s (%s)", t.prof.Owner.Name, t.prof.Owner.Role, t.prof.Owner.Location))
	case "clear":
		t.scrollback = nil
	case "stack":
		t.echoStack()
	case "open":
		t.execOpen(args)
	case "close":
		t.execWindowOp(args, "close", t.reg.Close)
	case "focus":
		t.execWindowOp(args, "focus", t.reg.Focus)
	default:
		t.echo(fmt.Sprintf("%s: command not found", cmd))
	}
}

func (t *Terminal) execOpen(args []string) {
	if len(args) != 1 {
		t.echo("usage: open <app|file>")
		return
	}
	name := args[0]
	if file, ok := t.prof.FileNamed(name); ok {
		target := registry.TxtFile
		if file.Kind == profile.FileImage {
			target = registry.ImgFile
		}
		t.reg.Open(target, map[string]string{"file": file.Name})
		return
	}
	id := registry.ID(name)
	if !t.reg.Knows(id) {
		t.echo(fmt.Sprintf("open: %s: no such app or file", name))
		return
	}
	t.reg.Open(id, nil)
}

func (t *Terminal) execWindowOp(args []string, name string, op func(registry.ID)) {
	if len(args) != 1 {
		t.echo(fmt.Sprintf("usage: %s <app>", name))
		return
	}
	id := registry.ID(args[0])
	if !t.reg.Knows(id) {
		t.echo(fmt.Sprintf("%s: %s: no such app", name, args[0]))
		return
	}
	op(id)
}

func (t *Terminal) echoStack() {
	type entry struct {
		id    registry.ID
		order int
	}
	var open []entry
	for id, win := range t.reg.Snapshot() {
		if win.Open {
			open = append(open, entry{id, win.StackOrder})
		}
	}
	if len(open) == 0 {
		t.echo("(nothing open)")
		return
	}
	for i := 0; i < len(open); i++ {
		for j := i + 1; j < len(open); j++ {
			if open[j].order > open[i].order {
				open[i], open[j] = open[j], open[i]
			}
		}
	}
	for _, e := range open {
		t.echo(fmt.Sprintf("%2d  %s", e.order, e.id))
	}
}

func (t *Terminal) echo(lines ...string) {
	t.scrollback = append(t.scrollback, lines...)
}

// Scrollback exposes the output history.
func (t *Terminal) Scrollback() []string {
	out := make([]string, len(t.scrollback))
	copy(out, t.scrollback)
	return out
}

func (t *Terminal) Render(_ map[string]string, width, height int) []string {
	// Reserve the last row for the input line; show the tail of the
	// scrollback above it.
	visible := height - 1
	if visible < 0 {
		visible = 0
	}
	start := 0
	if len(t.scrollback) > visible {
		start = len(t.scrollback) - visible
	}
	lines := make([]string, 0, height)
	for _, line := range t.scrollback[start:] {
		lines = append(lines, styles.TerminalOutput.Render(line))
	}
	lines = append(lines, styles.TerminalPrompt.Render(terminalPrompt)+t.input.View())
	return lines
}
