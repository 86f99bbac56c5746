package events

import "deskfolio/internal/logging"

type DockTracer struct{}

var Dock = DockTracer{}

func (DockTracer) Click(id string, open bool) {
	logging.Trace("dock.click", map[string]interface{}{"id": id, "open": open})
}

func (DockTracer) Hover(index int) {
	logging.Trace("dock.hover", map[string]interface{}{"index": index})
}

func (DockTracer) UnknownItem(id string) {
	logging.Trace("dock.unknown-item", map[string]interface{}{"id": id})
}
