package transform

import "github.com/adrian-kriegel/vtx/doc"

// Once wraps a visitor so each node id is processed at most once across
// passes. Ids are marked in Leave, after the wrapped visitor's own Leave
// ran, so a visitor that replaces a node never marks ids it did not see.
type Once struct {
	v    Visitor
	seen map[doc.ID]struct{}
}

func NewOnce(v Visitor) *Once {
	return &Once{v: v, seen: make(map[doc.ID]struct{})}
}

func (o *Once) Enter(n *doc.Node, parent doc.ID) (Action, error) {
	if _, ok := o.seen[n.ID]; ok {
		return Keep(n), nil
	}
	return o.v.Enter(n, parent)
}

func (o *Once) Leave(n *doc.Node, original doc.ID, parent doc.ID) {
	if _, ok := o.seen[original]; ok {
		return
	}
	o.v.Leave(n, original, parent)
	o.seen[original] = struct{}{}
	if n.ID != original {
		o.seen[n.ID] = struct{}{}
	}
}
