// Package doc provides the document tree for vtx modules.
//
// # Overview
//
// All vtx documents (whether parsed from text or built by rewrite
// visitors) are represented as trees of doc.Node. The tree is the shared
// data model between the parser, the transform engine, and the emitters.
//
// # Node Structure
//
// A Node is a tagged union: the Type field selects which payload fields
// are meaningful.
//
//   - TextType, CommentType: Text holds the literal content
//   - VarType: Text holds the variable name of a ${name} expression
//   - RawType: Bytes holds pre-rendered output bytes
//   - ErrType: Text holds an error message; such nodes cannot be emitted
//   - EnvType: Env holds the environment header and children
//
// # Identity
//
// Every node carries an ID issued by an IDGen. Two nodes with equal
// content are still distinct entities unless they share an id. Clone
// always issues fresh ids throughout the copied tree: a value spliced
// into several use sites is a new, unvisited entity at each splice, which
// is what makes one-shot visitors safe under substitution.
//
// The IDGen is passed explicitly into the parser and into every
// node-constructing call. Tests construct their own generator to obtain
// deterministic ids.
//
// # Positions
//
// Pos is nil for nodes inserted by rewriting and non-nil for nodes read
// from input. It is never mutated after creation.
//
// # Immutability
//
// Nodes are replaced wholesale by rewrites, never patched in place. The
// transform engine rebuilds an environment node whenever any of its
// children changed.
package doc
