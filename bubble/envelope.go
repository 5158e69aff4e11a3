package bubble

import (
	"github.com/google/uuid"

	"github.com/dshills/upcast/msg"
)

// Envelope is the per-spawn message structure. An envelope is owned by
// the controller for the duration of one Spawn call and is never shared
// across calls or stored.
type Envelope struct {
	// ID uniquely identifies this spawn, for observability hooks and
	// log correlation.
	ID string

	// Name is the current message name. Pass directives may rewrite it
	// as the message moves upward.
	Name string

	// Payload is the application data carried with the message.
	Payload msg.Payload

	// Source is the component that most recently spawned or forwarded
	// the envelope. Overwritten at every hop; the original spawner is
	// only recoverable if a transform copies it into the payload before
	// the first forward.
	Source Component

	// query is fixed at creation from the original name and never
	// revised, even when a directive renames the message.
	query bool
}

// Query reports whether the envelope was classified as a query message
// at creation.
func (e *Envelope) Query() bool {
	return e.query
}

// seal fills envelope defaults ahead of a bubble. It reports false when
// the envelope has no resolvable name.
func (e *Envelope) seal(source Component) bool {
	if e.Name == "" {
		return false
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Payload == nil {
		e.Payload = msg.New()
	}
	e.Source = source
	e.query = msg.IsQuery(e.Name)
	return true
}
