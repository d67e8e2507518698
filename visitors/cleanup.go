package visitors

import (
	"strings"

	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/transform"
)

// Cleanup drops a single leading and trailing whitespace-only text child
// from every environment. Markup like
//
//	<Quote>
//	  text
//	</Quote>
//
// otherwise renders stray newlines around the body.
type Cleanup struct {
	transform.Base
}

func (Cleanup) Enter(n *doc.Node, _ doc.ID) (transform.Action, error) {
	if n.Type != doc.EnvType || len(n.Env.Children) == 0 {
		return transform.Keep(n), nil
	}

	kids := n.Env.Children
	changed := false
	if blankText(kids[0]) {
		kids = kids[1:]
		changed = true
	}
	if len(kids) > 0 && blankText(kids[len(kids)-1]) {
		kids = kids[:len(kids)-1]
		changed = true
	}
	if !changed {
		return transform.Keep(n), nil
	}

	env := *n.Env
	env.Children = kids
	return transform.Replace(n.WithEnv(&env)), nil
}

func blankText(n *doc.Node) bool {
	return n.Type == doc.TextType && strings.TrimSpace(n.Text) == ""
}
