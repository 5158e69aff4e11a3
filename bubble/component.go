package bubble

import (
	"github.com/dshills/upcast/msg"
	"github.com/dshills/upcast/tree"
)

// Component is a participant in the message tree. Components must be
// comparable by identity (in practice, pointer types): the engine
// compares components with == when evaluating child-qualified table
// entries.
//
// All further capabilities are optional interfaces; a component opts into
// handling, forwarding, child resolution, and so on by implementing them.
type Component interface {
	// ComponentName returns a short identifier used in logs and errors.
	ComponentName() string
}

// HandlerProvider is implemented by components that handle messages. The
// table is read fresh at every bubble step, so the method may return a
// stored table or compute one.
type HandlerProvider interface {
	OnMessages() HandlerTable
}

// PassProvider is implemented by components that forward ordinary
// messages upward. The returned spec must be one of: nil, bool, []string
// of name patterns, PassTable, or a func() any returning one of those.
// It is re-resolved at every bubble step, never cached.
type PassProvider interface {
	PassMessages() any
}

// ParentProvider overrides parent resolution for a component. Returning
// nil means the component has no parent.
type ParentProvider interface {
	ParentComponent() Component
}

// ChildResolver overrides child-name resolution for a component.
// Returning (nil, nil) means the name resolves to nothing; returning an
// error (ErrUnknownChild, typically) aborts the bubble.
type ChildResolver interface {
	ChildByName(name string) (Component, error)
}

// Notifier receives the local notification emitted on the spawning
// component whenever it spawns a message, before any bubbling happens
// and regardless of the bubbling outcome.
type Notifier interface {
	MessageSpawned(name string, payload msg.Payload)
}

// Anchored ties a component to its node in the retained tree, enabling
// the default tree-position-based parent resolution.
type Anchored interface {
	Anchor() *tree.Node
}
