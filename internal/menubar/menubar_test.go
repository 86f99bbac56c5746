package menubar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

var testClock = time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

func TestViewShowsNameClockAndActiveTitle(t *testing.T) {
	m := New("deskfolio")
	row := ansi.Strip(m.View(80, "Finder", testClock))
	for _, want := range []string{"deskfolio", "Finder", "Fri Mar 7 14:30", "✕", "⏻"} {
		if !strings.Contains(row, want) {
			t.Fatalf("expected %q in menu bar, got %q", want, row)
		}
	}

	row = ansi.Strip(m.View(80, "", testClock))
	if strings.Contains(row, "✕") {
		t.Fatalf("close control rendered with no active window: %q", row)
	}
}

func TestClickRegions(t *testing.T) {
	m := New("deskfolio")
	m.View(80, "Finder", testClock)

	if got := m.Click(m.closeFrom); got != ActionCloseActive {
		t.Fatalf("expected close action at close region, got %v", got)
	}
	if got := m.Click(m.quitFrom); got != ActionQuit {
		t.Fatalf("expected quit action at quit region, got %v", got)
	}
	if got := m.Click(0); got != ActionNone {
		t.Fatalf("expected no action at column 0, got %v", got)
	}

	// With no active window the close region is disabled.
	closeAt := m.closeFrom
	m.View(80, "", testClock)
	if got := m.Click(closeAt); got == ActionCloseActive {
		t.Fatalf("close region should be disabled with no active window")
	}
}

func TestHoverHighlightFollowsFalloff(t *testing.T) {
	m := New("deskfolio")
	if m.highlighted(0) {
		t.Fatalf("no letter should highlight without a hover")
	}

	m.SetHover(4) // over the letter at index 3
	if !m.highlighted(3) {
		t.Fatalf("expected the letter under the pointer highlighted")
	}
	if !m.highlighted(2) || !m.highlighted(4) {
		t.Fatalf("expected immediate neighbours highlighted")
	}
	if m.highlighted(8) {
		t.Fatalf("expected distant letters unhighlighted")
	}

	m.ClearHover()
	if m.highlighted(3) {
		t.Fatalf("expected no highlight after hover cleared")
	}

	// Hover must only restyle the name, never change the text.
	plain := ansi.Strip(m.View(80, "", testClock))
	m.SetHover(4)
	if got := ansi.Strip(m.View(80, "", testClock)); got != plain {
		t.Fatalf("hover changed text: %q vs %q", got, plain)
	}
}

func TestViewPadsToWidth(t *testing.T) {
	m := New("deskfolio")
	row := m.View(100, "Terminal", testClock)
	if got := ansi.StringWidth(row); got != 100 {
		t.Fatalf("expected width 100, got %d", got)
	}
}
