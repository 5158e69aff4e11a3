package bubble

import (
	"github.com/dshills/upcast/tree"
)

// Base provides storage-backed implementations of the optional component
// capabilities: a handler table, a pass spec, a child-name registry, and
// a tree anchor. Concrete components embed *Base and add their own
// behavior on top.
type Base struct {
	name     string
	anchor   *tree.Node
	children map[string]Component
	handlers HandlerTable
	pass     any
}

// NewBase creates a base component with the given name.
func NewBase(name string) *Base {
	return &Base{name: name}
}

// ComponentName returns the component's name.
func (b *Base) ComponentName() string {
	return b.name
}

// Anchor returns the component's node in the retained tree, or nil when
// the component is detached.
func (b *Base) Anchor() *tree.Node {
	return b.anchor
}

// SetAnchor ties the component to a tree node. The caller is responsible
// for attaching the component to the node as well.
func (b *Base) SetAnchor(n *tree.Node) {
	b.anchor = n
}

// OnMessages returns the component's handler table.
func (b *Base) OnMessages() HandlerTable {
	return b.handlers
}

// SetHandlers replaces the component's handler table. Tables must not be
// replaced from inside a handler that is currently being matched.
func (b *Base) SetHandlers(t HandlerTable) {
	b.handlers = t
}

// PassMessages returns the component's pass spec.
func (b *Base) PassMessages() any {
	return b.pass
}

// SetPassSpec replaces the component's pass spec: nil, bool, []string,
// PassTable, or func() any returning one of those.
func (b *Base) SetPassSpec(spec any) {
	b.pass = spec
}

// ChildByName looks the name up in the component-local child registry.
// Unregistered names resolve to nothing; they are not an error.
func (b *Base) ChildByName(name string) (Component, error) {
	return b.children[name], nil
}

// RegisterChild records a named child for child-qualified table entries.
func (b *Base) RegisterChild(name string, c Component) {
	if b.children == nil {
		b.children = make(map[string]Component)
	}
	b.children[name] = c
}

// UnregisterChild removes a named child.
func (b *Base) UnregisterChild(name string) {
	delete(b.children, name)
}

// ensure Base satisfies the capability surfaces it claims.
var (
	_ Component       = (*Base)(nil)
	_ HandlerProvider = (*Base)(nil)
	_ PassProvider    = (*Base)(nil)
	_ ChildResolver   = (*Base)(nil)
	_ Anchored        = (*Base)(nil)
)
