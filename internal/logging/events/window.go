package events

import "deskfolio/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Open(id string, payload map[string]string) {
	fields := map[string]interface{}{"id": id}
	if len(payload) > 0 {
		fields["payload"] = payload
	}
	logging.Trace("window.open", fields)
}

func (WindowTracer) Close(id string) {
	logging.Trace("window.close", map[string]interface{}{"id": id})
}

func (WindowTracer) Focus(id string, order int) {
	logging.Trace("window.focus", map[string]interface{}{"id": id, "order": order})
}

func (WindowTracer) DragStart(id string, x, y int) {
	logging.Trace("window.drag.start", map[string]interface{}{"id": id, "x": x, "y": y})
}

func (WindowTracer) DragEnd(id string, x, y int) {
	logging.Trace("window.drag.end", map[string]interface{}{"id": id, "x": x, "y": y})
}
