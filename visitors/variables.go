package visitors

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/adrian-kriegel/vtx/debug"
	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/transform"
)

var (
	ErrUnresolved = errors.New("unresolved variable")
	ErrBadVarDef  = errors.New("malformed var definition")
)

// scope is one frame of bindings. owner is the id of the environment the
// bindings live in; the frame is popped when that environment is left.
type scope struct {
	owner  doc.ID
	values map[string]*doc.Node
}

// Variables binds <var name>value</var> definitions and substitutes
// ${name} expressions. A definition is visible to the siblings that
// follow it and to their subtrees, never to the enclosing environment.
//
// Expressions that are not a plain identifier are evaluated with the
// bindings in scope as the evaluation environment; the result is spliced
// in as a text node.
type Variables struct {
	ids    *doc.IDGen
	scopes []scope
}

func NewVariables(ids *doc.IDGen) *Variables {
	return &Variables{ids: ids}
}

func (vs *Variables) Enter(n *doc.Node, parent doc.ID) (transform.Action, error) {
	switch {
	case n.Type == doc.VarType:
		v, err := vs.substitute(n)
		if err != nil {
			return transform.Action{}, err
		}
		return transform.Replace(v), nil

	case n.Type == doc.EnvType && n.Env.Kind == doc.OtherHeader && n.Env.Name == "var":
		if err := vs.define(n, parent); err != nil {
			return transform.Action{}, err
		}
		return transform.Remove(), nil

	case n.Type == doc.EnvType:
		return vs.resolveAttrs(n)
	}
	return transform.Keep(n), nil
}

// resolveAttrs substitutes variable references inside attribute values.
// Attribute values are not part of the child walk, so they resolve when
// their environment is entered, with exactly the bindings visible there.
func (vs *Variables) resolveAttrs(n *doc.Node) (transform.Action, error) {
	var resolved doc.Attrs
	for k, v := range n.Env.Attrs {
		rv, changed := vs.resolveValue(v)
		if !changed {
			continue
		}
		if resolved == nil {
			resolved = make(doc.Attrs, len(n.Env.Attrs))
			for k2, v2 := range n.Env.Attrs {
				resolved[k2] = v2
			}
		}
		resolved[k] = rv
	}
	if resolved == nil {
		return transform.Keep(n), nil
	}
	env := *n.Env
	env.Attrs = resolved
	return transform.Replace(n.WithEnv(&env)), nil
}

// resolveValue substitutes the references in an attribute or definition
// value that are resolvable right now and leaves the rest in place. A
// component body legitimately carries references to parameters that only
// exist once the body is spliced into a usage site, so an unresolvable
// reference here is deferral, not an error.
func (vs *Variables) resolveValue(n *doc.Node) (*doc.Node, bool) {
	if n == nil {
		return nil, false
	}
	switch {
	case n.Type == doc.VarType:
		if v := vs.resolve(n.Text); v != nil {
			return v.Clone(vs.ids), true
		}
		if !isIdentifier(n.Text) {
			if out, err := vs.eval(n.Text); err == nil {
				return doc.Text(vs.ids, out, nil), true
			}
		}
		return n, false

	case n.Type == doc.EnvType && n.Env.Kind == doc.FragmentHeader:
		changed := false
		kids := make([]*doc.Node, len(n.Env.Children))
		for i, c := range n.Env.Children {
			rc, ch := vs.resolveValue(c)
			kids[i] = rc
			changed = changed || ch
		}
		if !changed {
			return n, false
		}
		env := *n.Env
		env.Children = kids
		return n.WithEnv(&env), true
	}
	return n, false
}

func (vs *Variables) Leave(_ *doc.Node, original doc.ID, _ doc.ID) {
	for len(vs.scopes) > 0 && vs.scopes[len(vs.scopes)-1].owner == original {
		vs.scopes = vs.scopes[:len(vs.scopes)-1]
	}
}

// define records the binding in the scope owned by the defining node's
// parent, opening that scope if this is the parent's first binding. The
// open form <var name>value</var> names the binding with a bare attribute
// and takes its value from the single child; the self-closing form
// <var name="value" /> carries the value in the attribute itself.
func (vs *Variables) define(n *doc.Node, parent doc.ID) error {
	var name string
	var value *doc.Node
	if n.Env.SelfClosing {
		keys := make([]string, 0, len(n.Env.Attrs))
		for k := range n.Env.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if v := n.Env.Attrs[k]; v != nil {
				name, value = k, v
				break
			}
		}
		if name == "" {
			return fmt.Errorf("%w: self-closing definition without a value", ErrBadVarDef)
		}
	} else {
		var ok bool
		name, ok = doc.ComponentName(n.Env.Attrs)
		if !ok {
			return fmt.Errorf("%w: no name attribute", ErrBadVarDef)
		}
		if len(n.Env.Children) != 1 {
			return fmt.Errorf("%w: %s: expected exactly one value, got %d", ErrBadVarDef, name, len(n.Env.Children))
		}
		value = n.Env.Children[0]
	}

	// the binding snapshots whatever is resolvable right now; component
	// body parameters stay deferred until splice time
	value, _ = vs.resolveValue(value)

	if len(vs.scopes) == 0 || vs.scopes[len(vs.scopes)-1].owner != parent {
		vs.scopes = append(vs.scopes, scope{owner: parent, values: map[string]*doc.Node{}})
	}
	vs.scopes[len(vs.scopes)-1].values[name] = value
	if debug.Scopes() {
		debug.Logf("scopes: bind %s in scope of node %d\n", name, parent)
	}
	return nil
}

// substitute resolves one ${...} reference to a node: a fresh clone of
// the bound value, or the evaluated result of a non-identifier
// expression.
func (vs *Variables) substitute(n *doc.Node) (*doc.Node, error) {
	if v := vs.resolve(n.Text); v != nil {
		// a clone carries fresh ids so one-shot visitors revisit it
		return v.Clone(vs.ids), nil
	}
	if isIdentifier(n.Text) {
		return nil, fmt.Errorf("%w: %s at %s", ErrUnresolved, n.Text, posOf(n))
	}
	out, err := vs.eval(n.Text)
	if err != nil {
		return nil, fmt.Errorf("${%s} at %s: %w", n.Text, posOf(n), err)
	}
	return doc.Text(vs.ids, out, nil), nil
}

func (vs *Variables) resolve(name string) *doc.Node {
	for i := len(vs.scopes) - 1; i >= 0; i-- {
		if v, ok := vs.scopes[i].values[name]; ok {
			return v
		}
	}
	return nil
}

// eval runs a non-identifier expression against the bindings in scope.
// Only text bindings participate; structured values cannot be operated on
// in an expression. Numeric-looking text binds as a number so arithmetic
// works without casts.
func (vs *Variables) eval(src string) (string, error) {
	env := map[string]any{}
	for _, s := range vs.scopes {
		for k, v := range s.values {
			if v.Type != doc.TextType {
				continue
			}
			if i, err := strconv.ParseInt(v.Text, 10, 64); err == nil {
				env[k] = int(i)
			} else if f, err := strconv.ParseFloat(v.Text, 64); err == nil {
				env[k] = f
			} else {
				env[k] = v.Text
			}
		}
	}
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return "", err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", res), nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			'a' <= r && r <= 'z',
			'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func posOf(n *doc.Node) string {
	if n.Pos == nil {
		return "inserted node"
	}
	return n.Pos.String()
}
