package apps

import (
	"testing"

	"deskfolio/internal/config/profile"
	"deskfolio/internal/registry"
	tea "github.com/charmbracelet/bubbletea"
)

func testProfile() profile.Profile {
	return profile.Profile{
		Owner: profile.Owner{
			Name: "Test Owner", Role: "Engineer", Email: "t@example.com",
			GitHub: "github.com/test", Website: "test.dev", Location: "Berlin",
		},
		TechStack: []string{"Go", "SQL"},
		Files: []profile.File{
			{Name: "about.txt", Kind: profile.FileText, Body: "hello"},
			{Name: "projects.txt", Kind: profile.FileText, Body: "things"},
			{Name: "me.png", Kind: profile.FileImage, Body: "512x512"},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFinderFilterNarrowsEntries(t *testing.T) {
	f := NewFinder(registry.New(), testProfile())
	if got := len(f.Entries()); got != 3 {
		t.Fatalf("expected 3 entries unfiltered, got %d", got)
	}

	f.HandleKey(keyRunes("png"))
	entries := f.Entries()
	if len(entries) != 1 || entries[0].Name != "me.png" {
		t.Fatalf("expected only me.png, got %#v", entries)
	}

	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlU})
	if got := len(f.Entries()); got != 3 {
		t.Fatalf("expected filter cleared, got %d entries", got)
	}
}

func TestFinderFilterClampsCursor(t *testing.T) {
	f := NewFinder(registry.New(), testProfile())
	f.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	if f.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", f.cursor)
	}
	f.HandleKey(keyRunes("about"))
	if f.cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", f.cursor)
	}
}

func TestFinderEnterOpensViewerWithPayload(t *testing.T) {
	reg := registry.New()
	f := NewFinder(reg, testProfile())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !reg.IsOpen(registry.TxtFile) {
		t.Fatalf("expected text viewer opened for about.txt")
	}
	if got := reg.Payload(registry.TxtFile); got["file"] != "about.txt" {
		t.Fatalf("expected payload about.txt, got %#v", got)
	}

	f.HandleKey(keyRunes("me.png"))
	f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !reg.IsOpen(registry.ImgFile) {
		t.Fatalf("expected image viewer opened for me.png")
	}
	if got := reg.Payload(registry.ImgFile); got["file"] != "me.png" {
		t.Fatalf("expected payload me.png, got %#v", got)
	}
}

func TestFinderBackspaceOnEmptyFilterNotConsumed(t *testing.T) {
	f := NewFinder(registry.New(), testProfile())
	if f.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("backspace on empty filter should not be consumed")
	}
}
