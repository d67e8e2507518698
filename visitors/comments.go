package visitors

import (
	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/transform"
)

// StripComments removes comment nodes from the tree.
type StripComments struct {
	transform.Base
}

func (StripComments) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type == doc.CommentType {
		return transform.Remove(), nil
	}
	return transform.Keep(n), nil
}
