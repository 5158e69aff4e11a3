package tree

import (
	"strings"
	"testing"
)

type fakeComponent struct{ name string }

func (f *fakeComponent) Render() {}

// dataHolder is attached to a node but has no render surface.
type dataHolder struct{}

func TestNode_AppendChild(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")

	root.AppendChild(a)
	root.AppendChild(b)

	if len(root.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children()))
	}
	if a.Parent() != root || b.Parent() != root {
		t.Error("children should point at root")
	}
}

func TestNode_AppendChild_Reparents(t *testing.T) {
	first := NewNode("first")
	second := NewNode("second")
	child := NewNode("child")

	first.AppendChild(child)
	second.AppendChild(child)

	if child.Parent() != second {
		t.Error("child should belong to second parent")
	}
	if len(first.Children()) != 0 {
		t.Error("child should be detached from first parent")
	}
}

func TestNode_RemoveChild(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	root.AppendChild(a)

	root.RemoveChild(a)

	if a.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if len(root.Children()) != 0 {
		t.Error("root should have no children")
	}
}

func TestNode_ChildNode(t *testing.T) {
	root := NewNode("root")
	root.AppendChild(NewNode("header"))
	root.AppendChild(NewNode("body"))

	if got := root.ChildNode("body"); got == nil || got.Name() != "body" {
		t.Error("expected to find body child")
	}
	if got := root.ChildNode("footer"); got != nil {
		t.Error("expected nil for missing child")
	}
}

func TestNode_Root(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	if leaf.Root() != root {
		t.Error("expected leaf.Root() to be root")
	}
	if !root.IsRoot() || leaf.IsRoot() {
		t.Error("IsRoot mismatch")
	}
}

func TestNode_Walk(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	root.AppendChild(a)
	a.AppendChild(b)

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name())
		return true
	})

	want := []string{"root", "a", "b"}
	if len(visited) != len(want) {
		t.Fatalf("expected %d nodes, visited %d", len(want), len(visited))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit order %v, want %v", visited, want)
			break
		}
	}
}

func TestNode_Walk_Stop(t *testing.T) {
	root := NewNode("root")
	root.AppendChild(NewNode("a"))
	root.AppendChild(NewNode("b"))

	count := 0
	root.Walk(func(n *Node) bool {
		count++
		return false
	})

	if count != 1 {
		t.Errorf("expected walk to stop after 1 node, visited %d", count)
	}
}

func TestParentComponent(t *testing.T) {
	grand := NewNode("grand")
	parent := NewNode("parent")
	wrapper := NewNode("wrapper") // structural, no component
	leaf := NewNode("leaf")

	grand.AppendChild(parent)
	parent.AppendChild(wrapper)
	wrapper.AppendChild(leaf)

	gc := &fakeComponent{name: "grand"}
	pc := &fakeComponent{name: "parent"}
	grand.Attach(gc)
	parent.Attach(pc)
	leaf.Attach(&fakeComponent{name: "leaf"})

	if got := ParentComponent(leaf); got != pc {
		t.Errorf("expected parent component, got %v", got)
	}
	if got := ParentComponent(parent); got != gc {
		t.Errorf("expected grand component, got %v", got)
	}
	if got := ParentComponent(grand); got != nil {
		t.Errorf("expected nil at root, got %v", got)
	}
}

func TestParentComponent_SkipsNonRenderable(t *testing.T) {
	grand := NewNode("grand")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	grand.AppendChild(mid)
	mid.AppendChild(leaf)

	gc := &fakeComponent{name: "grand"}
	grand.Attach(gc)
	mid.Attach(&dataHolder{}) // carries a component, but not renderable

	if got := ParentComponent(leaf); got != gc {
		t.Errorf("expected non-renderable ancestor to be skipped, got %v", got)
	}
}

func TestDraw(t *testing.T) {
	root := NewNode("root")
	root.Attach(&fakeComponent{})
	root.AppendChild(NewNode("child"))

	out := Draw(root)
	if !strings.Contains(out, "root") {
		t.Errorf("expected drawing to mention root, got:\n%s", out)
	}
	if !strings.Contains(out, "child") {
		t.Errorf("expected drawing to mention child, got:\n%s", out)
	}
}
