package doc

import (
	"testing"

	"github.com/adrian-kriegel/vtx/token"
)

func sampleTree(g *IDGen) *Node {
	return NewEnv(g, &Env{
		Kind:  OtherHeader,
		Name:  "Figure",
		Attrs: Attrs{"src": Text(g, "a.png", nil), "wide": nil},
		Children: []*Node{
			Text(g, "caption", &token.Pos{Off: 3}),
			Var(g, "label", nil),
		},
	}, nil)
}

func collectIDs(n *Node, ids map[ID]bool) {
	ids[n.ID] = true
	if n.Env == nil {
		return
	}
	for _, v := range n.Env.Attrs {
		if v != nil {
			collectIDs(v, ids)
		}
	}
	for _, c := range n.Env.Children {
		collectIDs(c, ids)
	}
}

func TestCloneFreshIDs(t *testing.T) {
	g := &IDGen{}
	orig := sampleTree(g)
	clone := orig.Clone(g)

	if !Equal(orig, clone) {
		t.Fatal("clone is not structurally equal to the original")
	}

	origIDs := map[ID]bool{}
	cloneIDs := map[ID]bool{}
	collectIDs(orig, origIDs)
	collectIDs(clone, cloneIDs)
	for id := range cloneIDs {
		if origIDs[id] {
			t.Fatalf("clone shares id %d with the original", id)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := &IDGen{}
	orig := sampleTree(g)
	clone := orig.Clone(g)
	clone.Env.Children[0].Text = "changed"
	if orig.Env.Children[0].Text != "caption" {
		t.Fatal("mutating the clone reached the original")
	}
}

func TestCloneKeepsBooleanAttrs(t *testing.T) {
	g := &IDGen{}
	clone := sampleTree(g).Clone(g)
	v, ok := clone.Env.Attrs["wide"]
	if !ok || v != nil {
		t.Fatalf("boolean attr cloned to %+v", v)
	}
}

func TestEqualIgnoresIDsAndPositions(t *testing.T) {
	a := sampleTree(&IDGen{})
	b := sampleTree(&IDGen{})
	b.Env.Children[0].Pos = nil
	if !Equal(a, b) {
		t.Fatal("trees differing only in ids and positions compare unequal")
	}
	b.Env.Children[1].Text = "other"
	if Equal(a, b) {
		t.Fatal("trees with different payloads compare equal")
	}
}

func TestVarDefShape(t *testing.T) {
	g := &IDGen{}
	def := VarDef(g, "x", Text(g, "1", nil))
	if def.Env.Name != "var" {
		t.Fatalf("name = %q", def.Env.Name)
	}
	name, ok := ComponentName(def.Env.Attrs)
	if !ok || name != "x" {
		t.Fatalf("bound name = %q, %v", name, ok)
	}
	if len(def.Env.Children) != 1 || def.Env.Children[0].Text != "1" {
		t.Fatalf("value = %+v", def.Env.Children)
	}
	if def.Pos != nil {
		t.Fatal("inserted node has a source position")
	}
}

func TestComponentNameSkipsContent(t *testing.T) {
	g := &IDGen{}
	attrs := Attrs{"content": nil, "Card": nil, "alt": Text(g, "x", nil)}
	name, ok := ComponentName(attrs)
	if !ok || name != "Card" {
		t.Fatalf("name = %q, %v, want Card", name, ok)
	}
	if _, ok := ComponentName(Attrs{"content": nil}); ok {
		t.Fatal("content alone must not name a component")
	}
}

func TestIDGenFirstID(t *testing.T) {
	g := &IDGen{}
	if id := g.Next(); id != 1 {
		t.Fatalf("first id = %d, want 1 (0 is reserved)", id)
	}
}
