package registry

import (
	"reflect"
	"testing"
)

func TestNewStartsClosedAtBaseline(t *testing.T) {
	r := New()
	if got := r.NextOrder(); got != BaselineOrder+1 {
		t.Fatalf("expected next order %d, got %d", BaselineOrder+1, got)
	}
	for _, id := range Known() {
		win, ok := r.Window(id)
		if !ok {
			t.Fatalf("expected %q to be known", id)
		}
		if win.Open {
			t.Fatalf("expected %q closed at startup", id)
		}
		if win.StackOrder != BaselineOrder {
			t.Fatalf("expected %q at baseline order, got %d", id, win.StackOrder)
		}
		if win.Payload != nil {
			t.Fatalf("expected %q without payload, got %#v", id, win.Payload)
		}
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	r := New()
	before := r.Snapshot()
	beforeNext := r.NextOrder()

	r.Open("spotify", nil)
	r.Close("spotify")
	r.Focus("spotify")

	if !reflect.DeepEqual(before, r.Snapshot()) {
		t.Fatalf("unknown id mutated window map")
	}
	if r.NextOrder() != beforeNext {
		t.Fatalf("unknown id advanced counter: %d -> %d", beforeNext, r.NextOrder())
	}
	if got := r.UnknownOps(); got != 3 {
		t.Fatalf("expected 3 ignored operations, got %d", got)
	}
}

func TestUnknownIDInvokesDiagnostic(t *testing.T) {
	r := New()
	var ops []string
	r.SetDiagnostic(func(op, id string) {
		ops = append(ops, op+":"+id)
	})
	r.Focus("nope")
	r.Focus(Finder)
	want := []string{"focus:nope"}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("expected diagnostics %v, got %v", want, ops)
	}
}

func TestOpenAssignsNextOrder(t *testing.T) {
	r := New()
	before := r.NextOrder()
	r.Open(Finder, nil)

	win, _ := r.Window(Finder)
	if !win.Open {
		t.Fatalf("expected finder open")
	}
	if win.StackOrder != before {
		t.Fatalf("expected order %d, got %d", before, win.StackOrder)
	}
	if r.NextOrder() != before+1 {
		t.Fatalf("expected counter %d, got %d", before+1, r.NextOrder())
	}
}

func TestOpenPayloadSemantics(t *testing.T) {
	r := New()
	r.Open(TxtFile, map[string]string{"file": "about.txt"})
	if got := r.Payload(TxtFile); got["file"] != "about.txt" {
		t.Fatalf("expected payload to be stored, got %#v", got)
	}

	// Reopening without a payload keeps the existing one.
	r.Open(TxtFile, nil)
	if got := r.Payload(TxtFile); got["file"] != "about.txt" {
		t.Fatalf("expected payload preserved on nil open, got %#v", got)
	}

	// A new payload replaces the old one wholesale.
	r.Open(TxtFile, map[string]string{"file": "notes.txt"})
	got := r.Payload(TxtFile)
	if got["file"] != "notes.txt" || len(got) != 1 {
		t.Fatalf("expected payload replaced, got %#v", got)
	}
}

func TestPayloadIsCopiedBothWays(t *testing.T) {
	r := New()
	in := map[string]string{"file": "a.txt"}
	r.Open(TxtFile, in)
	in["file"] = "mutated"
	if got := r.Payload(TxtFile); got["file"] != "a.txt" {
		t.Fatalf("registry aliased caller map: %#v", got)
	}
	out := r.Payload(TxtFile)
	out["file"] = "mutated"
	if got := r.Payload(TxtFile); got["file"] != "a.txt" {
		t.Fatalf("caller mutated registry state through returned map: %#v", got)
	}
}

func TestCloseResetsOrderAndPayload(t *testing.T) {
	r := New()
	r.Open(Safari, map[string]string{"url": "https://example.com"})
	r.Close(Safari)

	win, _ := r.Window(Safari)
	if win.Open {
		t.Fatalf("expected safari closed")
	}
	if win.StackOrder != BaselineOrder {
		t.Fatalf("expected baseline order, got %d", win.StackOrder)
	}
	if win.Payload != nil {
		t.Fatalf("expected payload cleared, got %#v", win.Payload)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	r := New()
	r.Open(Photos, nil)
	r.Close(Photos)
	once := r.Snapshot()
	onceNext := r.NextOrder()
	r.Close(Photos)
	if !reflect.DeepEqual(once, r.Snapshot()) {
		t.Fatalf("second close changed state")
	}
	if r.NextOrder() != onceNext {
		t.Fatalf("second close advanced counter")
	}
}

func TestFocusPreservesOpenAndPayload(t *testing.T) {
	r := New()
	r.Open(ImgFile, map[string]string{"file": "me.png"})
	r.Focus(ImgFile)
	win, _ := r.Window(ImgFile)
	if !win.Open || win.Payload["file"] != "me.png" {
		t.Fatalf("focus altered open/payload: %#v", win)
	}

	// Focusing a closed window bumps order but does not open it.
	r.Focus(Contact)
	win, _ = r.Window(Contact)
	if win.Open {
		t.Fatalf("focus opened a closed window")
	}
	if win.StackOrder == BaselineOrder {
		t.Fatalf("expected focus to bump order of closed window")
	}
}

func TestLastTouchedWinsStackOrder(t *testing.T) {
	r := New()
	sequence := []struct {
		op string
		id ID
	}{
		{"open", Finder},
		{"open", Terminal},
		{"focus", Finder},
		{"open", Safari},
		{"focus", Terminal},
	}
	for _, step := range sequence {
		switch step.op {
		case "open":
			r.Open(step.id, nil)
		case "focus":
			r.Focus(step.id)
		}
	}

	last := sequence[len(sequence)-1].id
	lastWin, _ := r.Window(last)
	for id, win := range r.Snapshot() {
		if id == last {
			continue
		}
		if win.StackOrder >= lastWin.StackOrder {
			t.Fatalf("expected %q topmost, but %q has order %d >= %d",
				last, id, win.StackOrder, lastWin.StackOrder)
		}
	}
	top, ok := r.Top()
	if !ok || top != last {
		t.Fatalf("expected top %q, got %q (ok=%v)", last, top, ok)
	}
}

// Mirrors the canonical open/open/focus/close walkthrough: A and B open, A is
// refocused, B closes, and A must end topmost with the counter advanced once
// per open/focus.
func TestOpenFocusCloseScenario(t *testing.T) {
	r := New()

	r.Open(Finder, nil)
	win, _ := r.Window(Finder)
	if !win.Open || win.StackOrder != 1 || r.NextOrder() != 2 {
		t.Fatalf("after open(finder): %#v next=%d", win, r.NextOrder())
	}

	r.Open(Terminal, nil)
	win, _ = r.Window(Terminal)
	if !win.Open || win.StackOrder != 2 || r.NextOrder() != 3 {
		t.Fatalf("after open(terminal): %#v next=%d", win, r.NextOrder())
	}

	r.Focus(Finder)
	win, _ = r.Window(Finder)
	if win.StackOrder != 3 || r.NextOrder() != 4 {
		t.Fatalf("after focus(finder): %#v next=%d", win, r.NextOrder())
	}
	if term, _ := r.Window(Terminal); term.StackOrder != 2 {
		t.Fatalf("focus(finder) disturbed terminal order: %d", term.StackOrder)
	}

	r.Close(Terminal)
	win, _ = r.Window(Terminal)
	if win.Open || win.StackOrder != BaselineOrder {
		t.Fatalf("after close(terminal): %#v", win)
	}

	top, ok := r.Top()
	if !ok || top != Finder {
		t.Fatalf("expected finder topmost, got %q (ok=%v)", top, ok)
	}
}

func TestTopWithNothingOpen(t *testing.T) {
	r := New()
	if _, ok := r.Top(); ok {
		t.Fatalf("expected no top window on a fresh registry")
	}
	r.Open(Finder, nil)
	r.Close(Finder)
	if _, ok := r.Top(); ok {
		t.Fatalf("expected no top window after closing the only one")
	}
	// A closed window with a bumped order must never report as topmost.
	r.Focus(Resume)
	if _, ok := r.Top(); ok {
		t.Fatalf("focused-but-closed window reported as topmost")
	}
}

func TestSubscribeNotifiesOnEffectiveMutations(t *testing.T) {
	r := New()
	calls := 0
	cancel := r.Subscribe(func() { calls++ })

	r.Open(Finder, nil)
	r.Focus(Finder)
	r.Close(Finder)
	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}

	r.Open("bogus", nil)
	if calls != 3 {
		t.Fatalf("unknown-id no-op notified subscribers")
	}

	cancel()
	r.Open(Finder, nil)
	if calls != 3 {
		t.Fatalf("unsubscribed function still notified")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	r := New()
	r.Open(Finder, map[string]string{"path": "~"})
	snap := r.Snapshot()
	entry := snap[Finder]
	entry.Open = false
	entry.Payload["path"] = "elsewhere"
	snap[Finder] = entry

	win, _ := r.Window(Finder)
	if !win.Open || win.Payload["path"] != "~" {
		t.Fatalf("snapshot mutation leaked into registry: %#v", win)
	}
}
