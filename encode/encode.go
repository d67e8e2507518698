package encode

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/adrian-kriegel/vtx/doc"
)

// ErrErrorNode fails an encode whose tree still contains an error node.
var ErrErrorNode = errors.New("error node in output tree")

// Sink receives output chunks in document order.
type Sink func(p []byte) error

// Encode writes the serialized form of n to sink. Module and fragment
// environments are transparent; attributes emit in sorted key order.
// Variable nodes that survived transformation emit back in source form.
func Encode(n *doc.Node, sink Sink) error {
	switch n.Type {
	case doc.TextType:
		return sink([]byte(n.Text))

	case doc.RawType:
		return sink(n.Bytes)

	case doc.VarType:
		return sink([]byte("${" + n.Text + "}"))

	case doc.CommentType:
		return sink([]byte("/**" + n.Text + "*/"))

	case doc.ErrType:
		return fmt.Errorf("%w: %s", ErrErrorNode, n.Text)

	case doc.EnvType:
		return encodeEnv(n.Env, sink)
	}
	return fmt.Errorf("cannot encode node type %s", n.Type)
}

// Bytes encodes n into a buffer.
func Bytes(n *doc.Node) ([]byte, error) {
	var buf bytes.Buffer
	err := Encode(n, func(p []byte) error {
		buf.Write(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeEnv(e *doc.Env, sink Sink) error {
	name := e.TagName()
	if name != "" {
		if err := sink([]byte("<" + name)); err != nil {
			return err
		}
		if err := encodeAttrs(e.Attrs, sink); err != nil {
			return err
		}
		if e.SelfClosing {
			return sink([]byte(" />"))
		}
		if err := sink([]byte(">")); err != nil {
			return err
		}
	}
	for _, child := range e.Children {
		if err := Encode(child, sink); err != nil {
			return err
		}
	}
	if name != "" {
		return sink([]byte(e.ClosingTag()))
	}
	return nil
}

func encodeAttrs(attrs doc.Attrs, sink Sink) error {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := attrs[k]
		if v == nil {
			if err := sink([]byte(" " + k)); err != nil {
				return err
			}
			continue
		}
		val, err := Bytes(v)
		if err != nil {
			return err
		}
		if err := sink([]byte(" " + k + `="` + string(val) + `"`)); err != nil {
			return err
		}
	}
	return nil
}
