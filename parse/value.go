package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/token"
)

// attrValue splits a quoted attribute value into text and variable
// segments: `src="${base}/a.png"` references the variable base. A single
// segment stays a plain node; mixed segments group under a fragment. An
// escaped \$ stays text.
func (p *Parser) attrValue(raw string, pos token.Pos) *doc.Node {
	var segs []*doc.Node

	segStart := 0
	segPos := pos
	cur := pos
	i := 0
	flush := func(end int) {
		if end > segStart {
			sp := segPos
			segs = append(segs, doc.Text(p.ids, raw[segStart:end], &sp))
		}
	}
	for i < len(raw) {
		if raw[i] == '\\' && i+1 < len(raw) {
			r, sz := utf8.DecodeRuneInString(raw[i+1:])
			cur.Advance('\\')
			cur.Advance(r)
			i += 1 + sz
			continue
		}
		if strings.HasPrefix(raw[i:], "${") {
			if end := strings.Index(raw[i:], "}"); end >= 0 {
				flush(i)
				vp := cur
				segs = append(segs, doc.Var(p.ids, raw[i+2:i+end], &vp))
				for _, r := range raw[i : i+end+1] {
					cur.Advance(r)
				}
				i += end + 1
				segStart = i
				segPos = cur
				continue
			}
		}
		r, sz := utf8.DecodeRuneInString(raw[i:])
		cur.Advance(r)
		i += sz
	}
	flush(len(raw))

	switch len(segs) {
	case 0:
		return doc.Text(p.ids, "", &pos)
	case 1:
		return segs[0]
	}
	return doc.NewEnv(p.ids, &doc.Env{
		Kind:     doc.FragmentHeader,
		Children: segs,
	}, &pos)
}
