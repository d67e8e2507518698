package doc

import (
	"slices"
	"sync/atomic"

	"github.com/adrian-kriegel/vtx/token"
)

// ID identifies a node. 0 is reserved and means "no node" (e.g. the
// parent of the document root).
type ID uint64

// IDGen issues monotonically increasing node ids. The zero value is
// ready to use; the first id issued is 1.
type IDGen struct {
	n atomic.Uint64
}

func (g *IDGen) Next() ID {
	return ID(g.n.Add(1))
}

type Type int

const (
	TextType Type = iota
	CommentType
	VarType
	RawType
	ErrType
	EnvType
)

func (t Type) String() string {
	return map[Type]string{
		TextType:    "Text",
		CommentType: "Comment",
		VarType:     "Var",
		RawType:     "Raw",
		ErrType:     "Err",
		EnvType:     "Env",
	}[t]
}

// Node is a single value in a vtx document. See the package documentation
// for which payload fields apply to which Type.
type Node struct {
	ID   ID
	Type Type

	// Pos is the source position of the node, nil if the node was
	// inserted by a rewrite.
	Pos *token.Pos

	Text  string
	Bytes []byte
	Env   *Env
}

func newNode(g *IDGen, t Type, pos *token.Pos) *Node {
	return &Node{ID: g.Next(), Type: t, Pos: pos}
}

func Text(g *IDGen, text string, pos *token.Pos) *Node {
	n := newNode(g, TextType, pos)
	n.Text = text
	return n
}

func Comment(g *IDGen, text string, pos *token.Pos) *Node {
	n := newNode(g, CommentType, pos)
	n.Text = text
	return n
}

// Var builds a ${name} variable expression leaf.
func Var(g *IDGen, name string, pos *token.Pos) *Node {
	n := newNode(g, VarType, pos)
	n.Text = name
	return n
}

// Raw builds an inserted leaf of pre-rendered output bytes.
func Raw(g *IDGen, b []byte) *Node {
	n := newNode(g, RawType, nil)
	n.Bytes = b
	return n
}

// Error builds an inserted error-marker leaf.
func Error(g *IDGen, msg string) *Node {
	n := newNode(g, ErrType, nil)
	n.Text = msg
	return n
}

func NewEnv(g *IDGen, env *Env, pos *token.Pos) *Node {
	n := newNode(g, EnvType, pos)
	n.Env = env
	return n
}

// Module wraps children in the document root environment. The parser
// calls this exactly once per module.
func Module(g *IDGen, children []*Node) *Node {
	return NewEnv(g, &Env{Kind: ModuleHeader, Children: children}, &token.Pos{})
}

// Fragment wraps children in an inserted transparent grouping node.
func Fragment(g *IDGen, children []*Node) *Node {
	return NewEnv(g, &Env{Kind: FragmentHeader, Children: children}, nil)
}

// Heading builds a heading environment of the given level.
func Heading(g *IDGen, level int, children []*Node, pos *token.Pos) *Node {
	return NewEnv(g, &Env{Kind: HeadingHeader, Level: level, Children: children}, pos)
}

// VarDef builds an inserted <var name>value</var> binding node.
func VarDef(g *IDGen, name string, value *Node) *Node {
	return NewEnv(g, &Env{
		Kind:     OtherHeader,
		Name:     "var",
		Attrs:    Attrs{name: nil},
		Children: []*Node{value},
	}, nil)
}

// Clone returns a deep copy of n with fresh ids throughout. A clone is
// deliberately a new entity everywhere: one-shot visitors will revisit it
// even when it is byte-for-byte identical to the original.
func (n *Node) Clone(g *IDGen) *Node {
	c := &Node{
		ID:   g.Next(),
		Type: n.Type,
		Pos:  n.Pos,
		Text: n.Text,
	}
	if n.Bytes != nil {
		c.Bytes = slices.Clone(n.Bytes)
	}
	if n.Env != nil {
		e := &Env{
			Kind:        n.Env.Kind,
			Name:        n.Env.Name,
			Level:       n.Env.Level,
			SelfClosing: n.Env.SelfClosing,
		}
		if n.Env.Attrs != nil {
			e.Attrs = make(Attrs, len(n.Env.Attrs))
			for k, v := range n.Env.Attrs {
				if v == nil {
					e.Attrs[k] = nil
					continue
				}
				e.Attrs[k] = v.Clone(g)
			}
		}
		if n.Env.Children != nil {
			e.Children = make([]*Node, len(n.Env.Children))
			for i, ch := range n.Env.Children {
				e.Children[i] = ch.Clone(g)
			}
		}
		c.Env = e
	}
	return c
}

// WithEnv returns a copy of n carrying env, keeping id and position. Used
// by rewrites that change an environment's children without changing the
// node's identity.
func (n *Node) WithEnv(env *Env) *Node {
	c := *n
	c.Env = env
	return &c
}
