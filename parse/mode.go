package parse

import (
	"fmt"

	"github.com/adrian-kriegel/vtx/doc"
)

// Mode determines how an environment body is scanned.
type Mode int

const (
	// ModeMarkup parses the body as nodes.
	ModeMarkup Mode = iota
	// ModeRaw captures the body as one opaque text span up to the
	// unescaped closing tag; structural characters inside are inert.
	ModeRaw
)

func (m Mode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "vtx"
}

type tagKey struct {
	kind doc.HeaderKind
	name string
}

// ModeRegistry maps a tag identity to its body parse mode. It is mutated
// while parsing when component definitions are encountered, which makes
// parsing order-dependent: the registry is consulted at the moment each
// usage is parsed.
type ModeRegistry struct {
	m map[tagKey]Mode
}

func NewModes() *ModeRegistry {
	return &ModeRegistry{m: map[tagKey]Mode{
		{kind: doc.EqBlock}:    ModeRaw,
		{kind: doc.EqInline}:   ModeRaw,
		{kind: doc.CodeHeader}: ModeRaw,
	}}
}

// Register pre-seeds the parse mode for a tag name. Callers that want
// component usages before their definitions build a registry up front and
// pass it via WithModes.
func (r *ModeRegistry) Register(name string, m Mode) {
	r.m[tagKey{kind: doc.OtherHeader, name: name}] = m
}

func (r *ModeRegistry) lookup(env *doc.Env) Mode {
	return r.m[tagKey{kind: env.Kind, name: env.Name}]
}

func (r *ModeRegistry) set(k tagKey, m Mode) {
	r.m[k] = m
}

func modeFromAttrs(attrs doc.Attrs) (Mode, error) {
	v, ok := attrs["content"]
	if !ok || v == nil {
		return ModeMarkup, nil
	}
	if v.Type != doc.TextType {
		return ModeMarkup, ErrBadContentMode
	}
	switch v.Text {
	case "vtx":
		return ModeMarkup, nil
	case "raw", "raw-strict":
		return ModeRaw, nil
	}
	return ModeMarkup, fmt.Errorf("%w %q", ErrBadContentMode, v.Text)
}
