package parse

import "github.com/adrian-kriegel/vtx/doc"

type opts struct {
	ids   *doc.IDGen
	modes *ModeRegistry
}

type Option func(*opts)

// WithIDGen makes the parser issue node ids from g instead of a private
// generator. Required when the same tree is later rewritten, so inserted
// nodes cannot collide with parsed ones.
func WithIDGen(g *doc.IDGen) Option {
	return func(o *opts) { o.ids = g }
}

// WithModes supplies a pre-seeded parse-mode registry.
func WithModes(m *ModeRegistry) Option {
	return func(o *opts) { o.modes = m }
}
