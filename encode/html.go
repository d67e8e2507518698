package encode

import (
	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/transform"
)

const katexVersion = "0.16.9"

// Layout wraps a module in a full HTML page: doctype, html, head and
// body. The module node keeps its id so one-shot wrapping holds across
// passes; its children move into the body. Wrap in a transform.Once.
type Layout struct {
	transform.Base
	ids *doc.IDGen
}

func NewLayout(ids *doc.IDGen) *Layout {
	return &Layout{ids: ids}
}

func (l *Layout) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type != doc.EnvType || n.Env.Kind != doc.ModuleHeader {
		return transform.Keep(n), nil
	}
	meta := element(l.ids, "meta", doc.Attrs{"charset": doc.Text(l.ids, "utf-8", nil)})
	meta.Env.SelfClosing = true
	page := doc.Fragment(l.ids, []*doc.Node{
		doc.Raw(l.ids, []byte("<!DOCTYPE html>\n")),
		element(l.ids, "html", nil,
			element(l.ids, "head", nil, meta),
			element(l.ids, "body", nil, n.Env.Children...),
		),
	})
	return transform.Replace(n.WithEnv(page.Env)), nil
}

// Katex appends the hosted KaTeX resources to the page head: the
// stylesheet, the renderer, and the auto-render extension configured to
// run on load. Wrap in a transform.Once.
type Katex struct {
	transform.Base
	ids *doc.IDGen
}

func NewKatex(ids *doc.IDGen) *Katex {
	return &Katex{ids: ids}
}

func (k *Katex) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type != doc.EnvType || n.Env.Kind != doc.OtherHeader || n.Env.Name != "head" {
		return transform.Keep(n), nil
	}
	base := "https://cdn.jsdelivr.net/npm/katex@" + katexVersion + "/dist/"
	env := *n.Env
	env.Children = append(env.Children,
		styleSheet(k.ids, base+"katex.min.css"),
		script(k.ids, base+"katex.min.js"),
		script(k.ids, base+"contrib/auto-render.min.js"),
		element(k.ids, "script", nil,
			doc.Raw(k.ids, []byte(
				`window.addEventListener("DOMContentLoaded",function(){renderMathInElement(document.body);});`,
			)),
		),
	)
	return transform.Replace(n.WithEnv(&env)), nil
}

// element builds an inserted environment with the given tag name.
func element(ids *doc.IDGen, name string, attrs doc.Attrs, children ...*doc.Node) *doc.Node {
	return doc.NewEnv(ids, &doc.Env{
		Kind:     doc.OtherHeader,
		Name:     name,
		Attrs:    attrs,
		Children: children,
	}, nil)
}

func script(ids *doc.IDGen, src string) *doc.Node {
	return element(ids, "script", doc.Attrs{
		"defer": nil,
		"src":   doc.Text(ids, src, nil),
	})
}

func styleSheet(ids *doc.IDGen, href string) *doc.Node {
	n := element(ids, "link", doc.Attrs{
		"href": doc.Text(ids, href, nil),
		"rel":  doc.Text(ids, "stylesheet", nil),
	})
	n.Env.SelfClosing = true
	return n
}
