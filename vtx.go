// Package vtx compiles vtx markup modules to HTML. It wires the scanner
// and parser, the standard rewrite chain, and the encoder into one
// pipeline; the subpackages stay usable on their own for tools that want
// only part of it.
package vtx

import (
	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/encode"
	"github.com/adrian-kriegel/vtx/parse"
	"github.com/adrian-kriegel/vtx/token"
	"github.com/adrian-kriegel/vtx/transform"
	"github.com/adrian-kriegel/vtx/visitors"
)

// DefaultMaxPasses bounds the rewrite fixpoint for typical modules.
// Deeply nested component expansions may need more.
const DefaultMaxPasses = 10

// Pipeline is one compilation context. The id generator is shared by the
// parser and every rewrite so inserted nodes never collide with parsed
// ones; reuse a Pipeline only for documents that share that id space.
type Pipeline struct {
	IDs       *doc.IDGen
	MaxPasses int
}

func New() *Pipeline {
	return &Pipeline{
		IDs:       &doc.IDGen{},
		MaxPasses: DefaultMaxPasses,
	}
}

// Parse parses src without rewriting it.
func (p *Pipeline) Parse(src string) (*doc.Node, []token.Diag) {
	return parse.Parse(src, parse.WithIDGen(p.IDs))
}

// chain is the standard rewrite order: lower component definitions,
// expand usages, resolve variables, then strip comments, clean up
// whitespace and lower math, code and page structure to HTML form.
func (p *Pipeline) chain() []transform.Visitor {
	return []transform.Visitor{
		transform.NewOnce(visitors.NewRegister(p.IDs)),
		transform.NewOnce(visitors.NewInsert(p.IDs)),
		visitors.NewVariables(p.IDs),
		visitors.StripComments{},
		visitors.Cleanup{},
		encode.NewEquations(p.IDs),
		encode.NewCode(p.IDs),
		transform.NewOnce(encode.NewLayout(p.IDs)),
		transform.NewOnce(encode.NewKatex(p.IDs)),
	}
}

// Transpile parses src and runs the standard rewrite chain. Diagnostics
// report recoverable syntax problems; err reports rewrite failures.
func (p *Pipeline) Transpile(src string) (*doc.Node, []token.Diag, error) {
	root, diags := p.Parse(src)
	out, err := transform.Transform(root, p.chain(), p.MaxPasses)
	if err != nil {
		return nil, diags, err
	}
	return out, diags, nil
}

// HTML compiles src to an HTML page written to sink.
func (p *Pipeline) HTML(src string, sink encode.Sink) ([]token.Diag, error) {
	out, diags, err := p.Transpile(src)
	if err != nil {
		return diags, err
	}
	return diags, encode.Encode(out, sink)
}
