// Package tree provides the retained node hierarchy used by the default
// parent resolution policy.
//
// Nodes form a DOM-like tree. A component attaches to a node with
// [Node.Attach]; the default policy walks upward from a component's
// anchor node, skipping nodes that carry no component or whose component
// is not renderable, and stops at the tree root.
//
// The node tree is deliberately minimal: it exists so that components do
// not have to hold references to their ancestors. Hierarchies that are
// not tree-shaped can bypass this package entirely by overriding parent
// resolution on the component or the controller.
package tree
