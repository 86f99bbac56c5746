// Package registry is the single source of truth for which desktop windows
// are open and how they stack. All known window identifiers exist from
// construction; open, close, and focus mutate their records in place and
// notify subscribers so presentation can re-derive visibility and layering.
//
// The registry is confined to the program's update goroutine. Operations are
// synchronous and total: they either mutate state or, for identifiers outside
// the known set, do nothing at all.
package registry

// ID names one of the fixed desktop windows. The set is closed; identifiers
// are never added or removed at runtime.
type ID string

const (
	Finder   ID = "finder"
	Terminal ID = "terminal"
	Contact  ID = "contact"
	Resume   ID = "resume"
	Safari   ID = "safari"
	Photos   ID = "photos"
	TxtFile  ID = "txtfile"
	ImgFile  ID = "imgfile"
)

// BaselineOrder is the stack order of a window that has never been opened or
// focused, and the value Close resets to.
const BaselineOrder = 0

// Known returns the closed set of window identifiers in stable order.
func Known() []ID {
	return []ID{Finder, Terminal, Contact, Resume, Safari, Photos, TxtFile, ImgFile}
}

// Window is the per-identifier record tracked by the registry.
type Window struct {
	Open       bool
	StackOrder int
	Payload    map[string]string
}

// Diagnostic receives operations that were ignored because their identifier
// is unknown. The registry itself never logs; callers wire this to the trace
// layer when they want typo'd identifiers surfaced.
type Diagnostic func(op, id string)

// Registry owns the window map and the monotonic stack-order counter.
type Registry struct {
	windows map[ID]*Window
	next    int

	subs   map[int]func()
	subSeq int

	diag       Diagnostic
	unknownOps int
}

// New constructs a registry with every known window closed at baseline order.
func New() *Registry {
	windows := make(map[ID]*Window, len(Known()))
	for _, id := range Known() {
		windows[id] = &Window{StackOrder: BaselineOrder}
	}
	return &Registry{
		windows: windows,
		next:    BaselineOrder + 1,
		subs:    make(map[int]func()),
	}
}

// SetDiagnostic installs the unknown-identifier hook. A nil value disables it.
func (r *Registry) SetDiagnostic(d Diagnostic) {
	r.diag = d
}

// Open marks the window visible and raises it above every window that has
// ever been opened or focused. A non-nil payload replaces the stored one;
// nil leaves any existing payload in place.
func (r *Registry) Open(id ID, payload map[string]string) {
	win, ok := r.windows[id]
	if !ok {
		r.ignore("open", id)
		return
	}
	win.Open = true
	win.StackOrder = r.next
	r.next++
	if payload != nil {
		win.Payload = clonePayload(payload)
	}
	r.notify()
}

// Close hides the window, resets its stack order to the baseline, and clears
// its payload. Closing an already-closed window is harmless.
func (r *Registry) Close(id ID) {
	win, ok := r.windows[id]
	if !ok {
		r.ignore("close", id)
		return
	}
	win.Open = false
	win.StackOrder = BaselineOrder
	win.Payload = nil
	r.notify()
}

// Focus raises the window above all others without touching its open state or
// payload. Focusing a closed window bumps its order with no visible effect;
// callers open closed windows explicitly.
func (r *Registry) Focus(id ID) {
	win, ok := r.windows[id]
	if !ok {
		r.ignore("focus", id)
		return
	}
	win.StackOrder = r.next
	r.next++
	r.notify()
}

// Window returns a copy of the record for id.
func (r *Registry) Window(id ID) (Window, bool) {
	win, ok := r.windows[id]
	if !ok {
		return Window{}, false
	}
	return copyWindow(win), true
}

// Snapshot returns a copy of the full window map.
func (r *Registry) Snapshot() map[ID]Window {
	out := make(map[ID]Window, len(r.windows))
	for id, win := range r.windows {
		out[id] = copyWindow(win)
	}
	return out
}

// Top returns the topmost open window, or ok=false when nothing is open.
func (r *Registry) Top() (ID, bool) {
	var (
		topID    ID
		topOrder int
		found    bool
	)
	for id, win := range r.windows {
		if !win.Open {
			continue
		}
		if !found || win.StackOrder > topOrder {
			topID = id
			topOrder = win.StackOrder
			found = true
		}
	}
	return topID, found
}

// IsOpen reports whether the window is currently shown.
func (r *Registry) IsOpen(id ID) bool {
	win, ok := r.windows[id]
	return ok && win.Open
}

// Payload returns a copy of the window's payload, or nil when absent.
func (r *Registry) Payload(id ID) map[string]string {
	win, ok := r.windows[id]
	if !ok {
		return nil
	}
	return clonePayload(win.Payload)
}

// Knows reports whether id belongs to the known set.
func (r *Registry) Knows(id ID) bool {
	_, ok := r.windows[id]
	return ok
}

// NextOrder exposes the next stack-order value the registry will assign.
func (r *Registry) NextOrder() int {
	return r.next
}

// UnknownOps returns how many operations were ignored for unknown identifiers.
func (r *Registry) UnknownOps() int {
	return r.unknownOps
}

// Subscribe registers fn to run synchronously after every effective mutation.
// The returned function removes the subscription.
func (r *Registry) Subscribe(fn func()) func() {
	r.subSeq++
	key := r.subSeq
	r.subs[key] = fn
	return func() {
		delete(r.subs, key)
	}
}

func (r *Registry) notify() {
	for _, fn := range r.subs {
		fn()
	}
}

func (r *Registry) ignore(op string, id ID) {
	r.unknownOps++
	if r.diag != nil {
		r.diag(op, string(id))
	}
}

func copyWindow(win *Window) Window {
	return Window{
		Open:       win.Open,
		StackOrder: win.StackOrder,
		Payload:    clonePayload(win.Payload),
	}
}

func clonePayload(payload map[string]string) map[string]string {
	if len(payload) == 0 {
		return nil
	}
	dup := make(map[string]string, len(payload))
	for k, v := range payload {
		dup[k] = v
	}
	return dup
}
