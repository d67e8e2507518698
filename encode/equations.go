package encode

import (
	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/transform"
)

// Equations rewrites equation environments into delimited text the KaTeX
// auto-renderer picks up: display equations in a paragraph of their own
// with $$ delimiters, inline equations with \( \).
type Equations struct {
	transform.Base
	ids *doc.IDGen
}

func NewEquations(ids *doc.IDGen) *Equations {
	return &Equations{ids: ids}
}

func (eq *Equations) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type != doc.EnvType {
		return transform.Keep(n), nil
	}
	switch n.Env.Kind {
	case doc.EqBlock:
		body := append([]*doc.Node{doc.Raw(eq.ids, []byte("$$"))}, n.Env.Children...)
		body = append(body, doc.Raw(eq.ids, []byte("$$")))
		return transform.Replace(element(eq.ids, "p", nil, body...)), nil

	case doc.EqInline:
		body := append([]*doc.Node{doc.Raw(eq.ids, []byte(`\(`))}, n.Env.Children...)
		body = append(body, doc.Raw(eq.ids, []byte(`\)`)))
		return transform.Replace(doc.Fragment(eq.ids, body)), nil
	}
	return transform.Keep(n), nil
}

// Code rewrites code environments into pre/code blocks. The body stays
// byte for byte; only the wrapper changes.
type Code struct {
	transform.Base
	ids *doc.IDGen
}

func NewCode(ids *doc.IDGen) *Code {
	return &Code{ids: ids}
}

func (c *Code) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type != doc.EnvType || n.Env.Kind != doc.CodeHeader {
		return transform.Keep(n), nil
	}
	inner := element(c.ids, "code", n.Env.Attrs, n.Env.Children...)
	return transform.Replace(element(c.ids, "pre", nil, inner)), nil
}
