package visitors

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/transform"
)

var (
	ErrBadComponent = errors.New("malformed component definition")
	ErrMissingParam = errors.New("missing component parameter value")
)

// Register lowers a <Component Name ...>body</Component> definition to a
// variable binding: the component name bound to a fragment of the body.
// Usage sites then resolve it like any other variable. Wrap in a
// transform.Once so a definition lowers exactly once.
type Register struct {
	transform.Base
	ids *doc.IDGen
}

func NewRegister(ids *doc.IDGen) *Register {
	return &Register{ids: ids}
}

func (r *Register) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type != doc.EnvType || n.Env.Kind != doc.ComponentHeader {
		return transform.Keep(n), nil
	}
	name, ok := doc.ComponentName(n.Env.Attrs)
	if !ok {
		return transform.Action{}, fmt.Errorf("%w: no name attribute at %s", ErrBadComponent, posOf(n))
	}
	body := doc.Fragment(r.ids, n.Env.Children)
	return transform.Replace(doc.VarDef(r.ids, name, body)), nil
}

// Insert expands a component usage site. An environment with an
// uppercase tag name becomes a fragment that binds each attribute as a
// variable, binds the children (if any) under "children", and ends in a
// ${Name} reference to the component body. The variable machinery does
// the rest. Wrap in a transform.Once: the expansion result contains the
// same attribute values and must not expand again.
type Insert struct {
	transform.Base
	ids *doc.IDGen
}

func NewInsert(ids *doc.IDGen) *Insert {
	return &Insert{ids: ids}
}

func (in *Insert) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type != doc.EnvType || n.Env.Kind != doc.OtherHeader || !startsUpper(n.Env.Name) {
		return transform.Keep(n), nil
	}

	keys := make([]string, 0, len(n.Env.Attrs))
	for k := range n.Env.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []*doc.Node
	for _, k := range keys {
		v := n.Env.Attrs[k]
		if v == nil {
			return transform.Action{}, fmt.Errorf("%w: %s in <%s> at %s", ErrMissingParam, k, n.Env.Name, posOf(n))
		}
		parts = append(parts, doc.VarDef(in.ids, k, v))
	}
	if !n.Env.SelfClosing {
		parts = append(parts, doc.VarDef(in.ids, "children", doc.Fragment(in.ids, n.Env.Children)))
	}
	parts = append(parts, doc.Var(in.ids, n.Env.Name, nil))
	return transform.Replace(doc.Fragment(in.ids, parts)), nil
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
