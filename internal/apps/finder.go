package apps

import (
	"fmt"
	"strings"

	"deskfolio/internal/config/profile"
	"deskfolio/internal/registry"
	"deskfolio/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var styles = theme.Default()

// Finder lists the profile's virtual files with fuzzy filtering. Selecting a
// file opens the matching viewer window with the file name as payload.
type Finder struct {
	reg    *registry.Registry
	files  []profile.File
	filter string
	cursor int
}

func NewFinder(reg *registry.Registry, prof profile.Profile) *Finder {
	return &Finder{reg: reg, files: prof.Files}
}

func (f *Finder) ID() registry.ID { return registry.Finder }
func (f *Finder) Title() string   { return "Finder" }

// Entries returns the files matching the current filter, in profile order.
func (f *Finder) Entries() []profile.File {
	trimmed := strings.TrimSpace(f.filter)
	if trimmed == "" {
		return f.files
	}
	names := make([]string, len(f.files))
	for i, file := range f.files {
		names[i] = file.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	matched := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matched[rank.OriginalIndex] = struct{}{}
	}
	out := make([]profile.File, 0, len(matched))
	for i, file := range f.files {
		if _, ok := matched[i]; ok {
			out = append(out, file)
		}
	}
	return out
}

// HandleKey implements Interactive: arrows move, typing filters, enter opens.
func (f *Finder) HandleKey(msg tea.KeyMsg) bool {
	entries := f.Entries()
	switch msg.String() {
	case "up":
		if f.cursor > 0 {
			f.cursor--
		}
		return true
	case "down":
		if f.cursor < len(entries)-1 {
			f.cursor++
		}
		return true
	case "enter":
		if f.cursor >= 0 && f.cursor < len(entries) {
			f.openFile(entries[f.cursor])
		}
		return true
	case "backspace":
		if f.filter == "" {
			return false
		}
		runes := []rune(f.filter)
		f.setFilter(string(runes[:len(runes)-1]))
		return true
	case "ctrl+u":
		if f.filter == "" {
			return false
		}
		f.setFilter("")
		return true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		f.setFilter(f.filter + string(msg.Runes))
		return true
	}
	return false
}

func (f *Finder) setFilter(filter string) {
	f.filter = filter
	if n := len(f.Entries()); f.cursor >= n {
		f.cursor = n - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

// openFile routes text files to the text viewer and images to the image
// viewer, carrying the file name as the window payload.
func (f *Finder) openFile(file profile.File) {
	target := registry.TxtFile
	if file.Kind == profile.FileImage {
		target = registry.ImgFile
	}
	f.reg.Open(target, map[string]string{"file": file.Name})
}

func (f *Finder) Render(_ map[string]string, width, height int) []string {
	lines := make([]string, 0, height)
	prompt := "search: " + f.filter
	if f.filter == "" {
		prompt = "search: " + styles.Muted.Render("(type to filter)")
	}
	lines = append(lines, " "+prompt, "")
	entries := f.Entries()
	if len(entries) == 0 {
		lines = append(lines, " "+styles.Muted.Render(fmt.Sprintf("no matches for %q", f.filter)))
		return lines
	}
	for i, entry := range entries {
		icon := "≡"
		if entry.Kind == profile.FileImage {
			icon = "▦"
		}
		label := fmt.Sprintf(" %s %s", icon, entry.Name)
		if i == f.cursor {
			lines = append(lines, styles.FinderSelected.Render(label))
		} else {
			lines = append(lines, styles.FinderEntry.Render(label))
		}
	}
	return lines
}
