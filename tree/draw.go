package tree

import (
	"fmt"

	drawer "github.com/m1gwings/treedrawer/tree"
)

// Draw renders the subtree rooted at n as ASCII art, for debugging and
// log output. Nodes with an attached component are marked with the
// component's type.
func Draw(n *Node) string {
	if n == nil {
		return ""
	}
	t := drawer.NewTree(drawer.NodeString(label(n)))
	addChildren(t, n)
	return t.String()
}

func addChildren(t *drawer.Tree, n *Node) {
	for i, c := range n.children {
		t.AddChild(drawer.NodeString(label(c)))
		sub, err := t.Child(i)
		if err != nil {
			continue
		}
		addChildren(sub, c)
	}
}

func label(n *Node) string {
	if n.component == nil {
		return n.name
	}
	return fmt.Sprintf("%s (%T)", n.name, n.component)
}
