// Package parse turns vtx source text into a document tree.
//
// # Usage
//
//	root, diags := parse.Parse(src)
//
// Parse never fails: malformed input is recorded as diagnostics and a
// best-effort tree is produced. The root is always a Module environment.
//
//	ids := &doc.IDGen{}
//	root, diags := parse.Parse(src, parse.WithIDGen(ids))
//
// Pass WithIDGen when the same generator must also issue ids for later
// rewrites, so ids stay unique across the whole pipeline.
//
// # Parse modes
//
// Environment bodies are scanned in one of two modes: markup (children
// parsed as nodes) or raw (body captured as one opaque text span). Eq and
// Code are raw by built-in default. A <Component ...> definition may opt
// its tag into raw mode through its content attribute. The mode table is
// consulted at the moment each usage is parsed, so a component must be
// declared before its usages; this is a hard ordering contract, not an
// accident. Callers needing forward references can pre-seed a registry
// via WithModes.
//
// # Related Packages
//
//   - github.com/adrian-kriegel/vtx/doc - document tree
//   - github.com/adrian-kriegel/vtx/token - tokens, positions, diagnostics
//   - github.com/adrian-kriegel/vtx/transform - tree rewriting
package parse
