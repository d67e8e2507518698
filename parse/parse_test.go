package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/token"
)

func mustParse(t *testing.T, src string, options ...Option) *doc.Node {
	t.Helper()
	root, diags := Parse(src, options...)
	if len(diags) != 0 {
		t.Fatalf("Parse(%q) diags: %v", src, diags)
	}
	return root
}

func child(t *testing.T, root *doc.Node, i int) *doc.Node {
	t.Helper()
	if root.Type != doc.EnvType || i >= len(root.Env.Children) {
		t.Fatalf("no child %d in %+v", i, root)
	}
	return root.Env.Children[i]
}

func TestParseText(t *testing.T) {
	root := mustParse(t, "hello world")
	if root.Env.Kind != doc.ModuleHeader {
		t.Fatalf("root kind = %v, want module", root.Env.Kind)
	}
	c := child(t, root, 0)
	if c.Type != doc.TextType || c.Text != "hello world" {
		t.Fatalf("child = %+v, want text %q", c, "hello world")
	}
	if c.Pos == nil || c.Pos.Off != 0 {
		t.Fatalf("child pos = %v, want offset 0", c.Pos)
	}
}

func TestParseHeading(t *testing.T) {
	root := mustParse(t, "## Title\nbody")
	h := child(t, root, 0)
	if h.Type != doc.EnvType || h.Env.Kind != doc.HeadingHeader || h.Env.Level != 2 {
		t.Fatalf("heading = %+v", h)
	}
	if got := child(t, h, 0); got.Text != "Title" {
		t.Errorf("heading text = %q, want %q", got.Text, "Title")
	}
	if got := child(t, root, 1); got.Text != "body" {
		t.Errorf("after heading = %q, want %q", got.Text, "body")
	}
}

func TestParseVar(t *testing.T) {
	root := mustParse(t, "a ${x} b")
	v := child(t, root, 1)
	if v.Type != doc.VarType || v.Text != "x" {
		t.Fatalf("var = %+v", v)
	}
}

func TestParseInlineMath(t *testing.T) {
	root := mustParse(t, "energy: $E = mc^2$")
	eq := child(t, root, 1)
	if eq.Type != doc.EnvType || eq.Env.Kind != doc.EqInline {
		t.Fatalf("eq = %+v", eq)
	}
	if got := child(t, eq, 0); got.Text != "E = mc^2" {
		t.Errorf("math = %q", got.Text)
	}
}

func TestParseComment(t *testing.T) {
	root := mustParse(t, "/** note */")
	c := child(t, root, 0)
	if c.Type != doc.CommentType || c.Text != " note " {
		t.Fatalf("comment = %+v", c)
	}
}

func TestParseFragment(t *testing.T) {
	root := mustParse(t, "<>inner</>")
	f := child(t, root, 0)
	if f.Type != doc.EnvType || f.Env.Kind != doc.FragmentHeader {
		t.Fatalf("fragment = %+v", f)
	}
	if got := child(t, f, 0); got.Text != "inner" {
		t.Errorf("fragment text = %q", got.Text)
	}
}

func TestParseEnvAttrs(t *testing.T) {
	root := mustParse(t, `<Image src="pic.png" hidden />`)
	env := child(t, root, 0)
	if env.Type != doc.EnvType || env.Env.Name != "Image" || !env.Env.SelfClosing {
		t.Fatalf("env = %+v", env)
	}
	src, ok := env.Env.Attrs["src"]
	if !ok || src == nil || src.Text != "pic.png" {
		t.Errorf("src attr = %+v", src)
	}
	hidden, ok := env.Env.Attrs["hidden"]
	if !ok || hidden != nil {
		t.Errorf("hidden attr = %+v, want boolean attribute", hidden)
	}
}

func TestParseEmptyAttrValue(t *testing.T) {
	root := mustParse(t, `<Image alt="" />`)
	env := child(t, root, 0)
	alt := env.Env.Attrs["alt"]
	if alt == nil || alt.Type != doc.TextType || alt.Text != "" {
		t.Fatalf("alt attr = %+v, want empty text node", alt)
	}
}

func TestParseRawEnv(t *testing.T) {
	root := mustParse(t, "<Code>$x$ <b> /** no comment */</Code>")
	env := child(t, root, 0)
	if env.Env.Kind != doc.CodeHeader {
		t.Fatalf("env = %+v", env)
	}
	if len(env.Env.Children) != 1 {
		t.Fatalf("raw body split into %d children", len(env.Env.Children))
	}
	if got := child(t, env, 0); got.Text != "$x$ <b> /** no comment */" {
		t.Errorf("raw body = %q", got.Text)
	}
}

func TestParseEscapedOpen(t *testing.T) {
	root := mustParse(t, `a \<Quote> b`)
	if len(root.Env.Children) != 1 {
		t.Fatalf("children = %+v, want one text run", root.Env.Children)
	}
	// the escape stays in the captured span
	if got := child(t, root, 0); got.Text != `a \<Quote> b` {
		t.Errorf("text = %q", got.Text)
	}
}

func TestParseUnterminatedEnv(t *testing.T) {
	root, diags := Parse("<Quote>text")
	if len(diags) != 1 || !errors.Is(diags[0].Err, ErrUnexpectedEOF) {
		t.Fatalf("diags = %v, want one ErrUnexpectedEOF", diags)
	}
	env := child(t, root, 0)
	if env.Env.Name != "Quote" {
		t.Fatalf("env = %+v", env)
	}
	if got := child(t, env, 0); got.Text != "text" {
		t.Errorf("partial body = %q, want %q", got.Text, "text")
	}
}

func TestParseMissingAttrName(t *testing.T) {
	_, diags := Parse(`<Image ="x" />`)
	if len(diags) != 1 || !errors.Is(diags[0].Err, ErrMissingAttrName) {
		t.Fatalf("diags = %v, want one ErrMissingAttrName", diags)
	}
}

func TestParseComponentRegistersRawMode(t *testing.T) {
	root := mustParse(t, `<Component Card content="raw" /><Card>$ not math <x></Card>`)
	card := child(t, root, 1)
	if card.Env.Name != "Card" {
		t.Fatalf("env = %+v", card)
	}
	if len(card.Env.Children) != 1 {
		t.Fatalf("raw component body split into %d children", len(card.Env.Children))
	}
	if got := child(t, card, 0); got.Text != "$ not math <x>" {
		t.Errorf("raw body = %q", got.Text)
	}
}

func TestParseComponentDefaultMarkupMode(t *testing.T) {
	root := mustParse(t, `<Component Box /><Box>${v}</Box>`)
	box := child(t, root, 1)
	if got := child(t, box, 0); got.Type != doc.VarType || got.Text != "v" {
		t.Errorf("markup body = %+v, want a variable node", got)
	}
}

func TestParseComponentBadContentMode(t *testing.T) {
	_, diags := Parse(`<Component Box content="nope" />`)
	if len(diags) != 1 || !errors.Is(diags[0].Err, ErrBadContentMode) {
		t.Fatalf("diags = %v, want one ErrBadContentMode", diags)
	}
}

func TestParseWithModesForwardReference(t *testing.T) {
	// usage before definition, pre-seeded via WithModes
	modes := NewModes()
	modes.Register("Card", ModeRaw)
	root := mustParse(t, "<Card>$raw$</Card>", WithModes(modes))
	card := child(t, root, 0)
	if got := child(t, card, 0); got.Text != "$raw$" {
		t.Errorf("raw body = %q", got.Text)
	}
}

func TestParseSharedIDGen(t *testing.T) {
	g := &doc.IDGen{}
	a := mustParse(t, "one", WithIDGen(g))
	b := mustParse(t, "two", WithIDGen(g))
	if a.ID == b.ID {
		t.Fatal("two modules share a node id")
	}
	if g.Next() <= b.ID {
		t.Fatal("generator did not advance past issued ids")
	}
}

func TestParseTreeShape(t *testing.T) {
	g := &doc.IDGen{}
	got := mustParse(t, `a ${x}<Image src="p" />`)
	want := doc.Module(g, []*doc.Node{
		doc.Text(g, "a ", nil),
		doc.Var(g, "x", nil),
		doc.NewEnv(g, &doc.Env{
			Kind:        doc.OtherHeader,
			Name:        "Image",
			Attrs:       doc.Attrs{"src": doc.Text(g, "p", nil)},
			SelfClosing: true,
		}, nil),
	})
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(doc.Node{}, "ID", "Pos")); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAttrInterpolation(t *testing.T) {
	root := mustParse(t, `<img src="${base}/a.png" />`)
	env := child(t, root, 0)
	v := env.Env.Attrs["src"]
	if v == nil || v.Type != doc.EnvType || v.Env.Kind != doc.FragmentHeader {
		t.Fatalf("src attr = %+v, want an interpolation fragment", v)
	}
	if len(v.Env.Children) != 2 {
		t.Fatalf("segments = %+v", v.Env.Children)
	}
	if ref := v.Env.Children[0]; ref.Type != doc.VarType || ref.Text != "base" {
		t.Errorf("segment 0 = %+v, want variable base", ref)
	}
	if tail := v.Env.Children[1]; tail.Type != doc.TextType || tail.Text != "/a.png" {
		t.Errorf("segment 1 = %+v, want text /a.png", tail)
	}
}

func TestParseAttrWholeVar(t *testing.T) {
	root := mustParse(t, `<img src="${pic}" />`)
	v := child(t, root, 0).Env.Attrs["src"]
	if v == nil || v.Type != doc.VarType || v.Text != "pic" {
		t.Fatalf("src attr = %+v, want a single variable node", v)
	}
}

func TestParsePositionsExact(t *testing.T) {
	src := "line one\n$m$"
	root := mustParse(t, src)
	eq := child(t, root, 1)
	want := token.Pos{Line: 1, Col: 0, Off: 9}
	if eq.Pos == nil || *eq.Pos != want {
		t.Fatalf("eq pos = %+v, want %+v", eq.Pos, want)
	}
}
