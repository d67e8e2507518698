package doc

import "bytes"

// Equal reports structural equality of two trees, ignoring ids and
// positions. Identity-sensitive callers must compare ids themselves.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Text != b.Text {
		return false
	}
	if !bytes.Equal(a.Bytes, b.Bytes) {
		return false
	}
	return equalEnv(a.Env, b.Env)
}

func equalEnv(a, b *Env) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Name != b.Name || a.Level != b.Level ||
		a.SelfClosing != b.SelfClosing {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for k, av := range a.Attrs {
		bv, ok := b.Attrs[k]
		if !ok {
			return false
		}
		if !Equal(av, bv) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
