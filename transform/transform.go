package transform

import (
	"errors"
	"fmt"

	"github.com/adrian-kriegel/vtx/debug"
	"github.com/adrian-kriegel/vtx/doc"
)

var (
	// ErrRootRemoved aborts a transform whose root node was removed;
	// the root must always survive.
	ErrRootRemoved = errors.New("root node removed")
	// ErrMaxPasses aborts a transform that did not stabilize within the
	// allowed number of passes.
	ErrMaxPasses = errors.New("max transform passes reached")
)

type actionKind int

const (
	keepAction actionKind = iota
	replaceAction
	removeAction
)

// Action is a visitor's disposition for a node.
type Action struct {
	kind actionKind
	node *doc.Node
}

func Keep(n *doc.Node) Action {
	return Action{kind: keepAction, node: n}
}

func Replace(n *doc.Node) Action {
	return Action{kind: replaceAction, node: n}
}

func Remove() Action {
	return Action{kind: removeAction}
}

// Node returns the node carried by a Keep or Replace action.
func (a Action) Node() *doc.Node {
	return a.node
}

func (a Action) Removed() bool {
	return a.kind == removeAction
}

// Visitor is the unit of rewriting. Enter runs pre-order; parent is the
// id of the enclosing environment, 0 for the root. Leave runs post-order
// with the final node and the id the node had at Enter.
type Visitor interface {
	Enter(n *doc.Node, parent doc.ID) (Action, error)
	Leave(n *doc.Node, original doc.ID, parent doc.ID)
}

// Base provides no-op defaults; visitors embed it and override the hooks
// they need.
type Base struct{}

func (Base) Enter(n *doc.Node, _ doc.ID) (Action, error) {
	return Keep(n), nil
}

func (Base) Leave(*doc.Node, doc.ID, doc.ID) {}

// singlePass descends the tree under one visitor. Removed nodes
// short-circuit: their children are not visited and Leave is not called.
// An open environment is rebuilt with the surviving children; any child
// Replace or Remove marks the environment itself as replaced.
func singlePass(n *doc.Node, parent doc.ID, v Visitor) (Action, error) {
	original := n.ID

	act, err := v.Enter(n, parent)
	if err != nil {
		return Action{}, err
	}
	if act.kind == removeAction {
		return act, nil
	}

	n = act.node
	if n.Type == doc.EnvType && !n.Env.SelfClosing {
		changed := false
		kids := make([]*doc.Node, 0, len(n.Env.Children))
		for _, child := range n.Env.Children {
			ca, err := singlePass(child, n.ID, v)
			if err != nil {
				return Action{}, err
			}
			switch ca.kind {
			case removeAction:
				changed = true
			case replaceAction:
				changed = true
				kids = append(kids, ca.node)
			default:
				kids = append(kids, ca.node)
			}
		}

		env := *n.Env
		env.Children = kids
		n = n.WithEnv(&env)

		if changed {
			act = Replace(n)
		} else {
			act = Keep(n)
		}
	}

	v.Leave(act.node, original, parent)
	return act, nil
}

// Transform rewrites root under the ordered visitor list until the last
// visitor keeps the whole tree, or fails with ErrMaxPasses once more than
// maxPasses unstable passes ran. Any visitor error aborts immediately;
// the partial tree is discarded.
func Transform(root *doc.Node, visitors []Visitor, maxPasses int) (*doc.Node, error) {
	if len(visitors) == 0 {
		return root, nil
	}

	act := Replace(root)
	passes := 0
	for {
		for _, v := range visitors {
			if act.kind == removeAction {
				return nil, ErrRootRemoved
			}
			var err error
			act, err = singlePass(act.node, 0, v)
			if err != nil {
				return nil, err
			}
		}
		if act.kind == removeAction {
			return nil, ErrRootRemoved
		}
		if act.kind == keepAction {
			return act.node, nil
		}

		passes++
		if passes > maxPasses {
			return nil, fmt.Errorf("%w (%d)", ErrMaxPasses, maxPasses)
		}
		if debug.Transform() {
			debug.Logf("transform: pass %d not stable\n", passes)
		}
	}
}
