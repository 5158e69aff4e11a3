package tree

// Node is a node in the retained hierarchy. A node may carry an attached
// component; structural nodes (layout wrappers and the like) carry none.
// Nodes are not safe for concurrent mutation.
type Node struct {
	name      string
	parent    *Node
	children  []*Node
	component any
}

// Renderable marks a component as owning a drawable surface. The default
// parent resolution only yields ancestors whose attached component is
// renderable; bare data holders attached to intermediate nodes are
// skipped.
type Renderable interface {
	Render()
}

// NewNode creates a detached node with the given name.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AppendChild adds child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n. It is a no-op when child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// ChildNode returns the first direct child with the given name, or nil.
func (n *Node) ChildNode(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Attach associates a component with the node. Attaching nil clears the
// association.
func (n *Node) Attach(component any) {
	n.component = component
}

// Component returns the attached component, or nil.
func (n *Node) Component() any {
	return n.component
}

// Root returns the root of the tree containing n.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Walk visits n and its descendants depth-first. The visit function
// returns false to stop the walk.
func (n *Node) Walk(visit func(*Node) bool) {
	n.walk(visit)
}

func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}

// ParentComponent walks upward from n and returns the component attached
// to the nearest qualifying ancestor node. Nodes without a component and
// nodes whose component is not [Renderable] are skipped. Returns nil when
// the root is reached without a match.
func ParentComponent(n *Node) any {
	if n == nil {
		return nil
	}
	for cur := n.parent; cur != nil; cur = cur.parent {
		c := cur.component
		if c == nil {
			continue
		}
		if _, ok := c.(Renderable); !ok {
			continue
		}
		return c
	}
	return nil
}
