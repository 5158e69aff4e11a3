package bubble

import (
	"testing"

	"github.com/dshills/upcast/msg"
	"github.com/dshills/upcast/tree"
)

// panel is anchored in the retained tree and renderable, exercising the
// default tree-position-based parent policy.
type panel struct {
	*Base
}

func newPanel(name string) *panel {
	return &panel{Base: NewBase(name)}
}

func (p *panel) Render() {}

// mount creates a node named after the panel, attaches the panel,
// anchors it, and appends the node under parent.
func mount(p *panel, parent *tree.Node) *tree.Node {
	n := tree.NewNode(p.ComponentName())
	n.Attach(p)
	p.SetAnchor(n)
	if parent != nil {
		parent.AppendChild(n)
	}
	return n
}

func TestAnchorParent(t *testing.T) {
	rootC := newPanel("root")
	midC := newPanel("mid")
	leafC := newPanel("leaf")

	rootN := mount(rootC, nil)
	midN := mount(midC, rootN)
	mount(leafC, midN)

	if got := AnchorParent(leafC); got != Component(midC) {
		t.Errorf("expected mid, got %v", got)
	}
	if got := AnchorParent(midC); got != Component(rootC) {
		t.Errorf("expected root, got %v", got)
	}
	if got := AnchorParent(rootC); got != nil {
		t.Errorf("expected nil at root, got %v", got)
	}
}

func TestAnchorParent_SkipsStructuralNodes(t *testing.T) {
	rootC := newPanel("root")
	leafC := newPanel("leaf")

	rootN := mount(rootC, nil)
	wrapper := tree.NewNode("wrapper") // no component attached
	rootN.AppendChild(wrapper)
	leafN := tree.NewNode("leaf")
	leafN.Attach(leafC)
	leafC.SetAnchor(leafN)
	wrapper.AppendChild(leafN)

	if got := AnchorParent(leafC); got != Component(rootC) {
		t.Errorf("expected structural wrapper to be skipped, got %v", got)
	}
}

func TestAnchorParent_Detached(t *testing.T) {
	c := newPanel("floating")
	if got := AnchorParent(c); got != nil {
		t.Errorf("expected nil for detached component, got %v", got)
	}
}

func TestSpawn_TreeDefaultPolicy(t *testing.T) {
	rootC := newPanel("root")
	midC := newPanel("mid")
	leafC := newPanel("leaf")

	rootN := mount(rootC, nil)
	midN := mount(midC, rootN)
	mount(leafC, midN)

	midC.SetPassSpec(true)
	var seen []string
	midC.SetHandlers(HandlerTable{"ping": recordHandler(&seen, "mid")})
	rootC.SetHandlers(HandlerTable{"ping": recordHandler(&seen, "root")})

	ctl := New()
	if _, err := ctl.Spawn(leafC, "ping", nil); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if len(seen) != 2 || seen[0] != "mid" || seen[1] != "root" {
		t.Errorf("expected delivery through the tree, got %v", seen)
	}
}

func TestBase_ChildRegistry(t *testing.T) {
	b := NewBase("parent")
	child := NewBase("child")

	b.RegisterChild("editor", child)

	got, err := b.ChildByName("editor")
	if err != nil {
		t.Fatalf("ChildByName failed: %v", err)
	}
	if got != Component(child) {
		t.Error("expected registered child")
	}

	got, err = b.ChildByName("missing")
	if err != nil {
		t.Fatalf("ChildByName failed: %v", err)
	}
	if got != nil {
		t.Error("unregistered names must resolve to nothing")
	}

	b.UnregisterChild("editor")
	if got, _ := b.ChildByName("editor"); got != nil {
		t.Error("expected child to be unregistered")
	}
}

func TestEnvelope_Query(t *testing.T) {
	leaf := newWidget("leaf")
	env := &Envelope{Name: "give_info!"}
	if !env.seal(leaf) {
		t.Fatal("seal should succeed with a name")
	}
	if !env.Query() {
		t.Error("expected query classification")
	}
	if env.ID == "" {
		t.Error("expected generated ID")
	}
	if env.Payload == nil {
		t.Error("expected default payload")
	}

	plain := &Envelope{Name: "ping"}
	plain.seal(leaf)
	if plain.Query() {
		t.Error("expected ordinary classification")
	}
}

func TestSpawnEnvelope_Prebuilt(t *testing.T) {
	root := newWidget("root")
	leaf := newWidget("leaf")
	leaf.parent = root

	var got msg.Payload
	root.SetHandlers(HandlerTable{
		"ping": Func(func(p msg.Payload, src Component, name string) any {
			got = p
			return nil
		}),
	})

	ctl := New()
	env := &Envelope{Name: "ping", Payload: msg.Payload{"k": "v"}}
	if _, err := ctl.SpawnEnvelope(leaf, env); err != nil {
		t.Fatalf("SpawnEnvelope failed: %v", err)
	}
	if got["k"] != "v" {
		t.Errorf("expected prebuilt payload to arrive, got %v", got)
	}
}
