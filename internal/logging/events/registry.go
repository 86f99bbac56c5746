package events

import "deskfolio/internal/logging"

type RegistryTracer struct{}

var Registry = RegistryTracer{}

// UnknownID records a registry operation that was ignored because its window
// identifier is not part of the known set. Silent no-ops are the contract,
// but the trace keeps typo'd identifiers discoverable.
func (RegistryTracer) UnknownID(op, id string) {
	logging.Trace("registry.unknown-id", map[string]interface{}{"op": op, "id": id})
}
