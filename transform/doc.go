// Package transform rewrites document trees with ordered, multi-pass
// visitors until a fixpoint is reached.
//
// # Visitors
//
// A Visitor sees every node twice: Enter pre-order, before the children,
// and Leave post-order, after them. Enter returns an Action deciding the
// node's fate: Keep it, Replace it, or Remove it. Removing a node prunes
// its whole subtree; the children are never visited and Leave is not
// called for it.
//
// Leave receives the final node together with the id the node had when it
// was entered. A visitor that opened bookkeeping for a node at Enter (a
// scope, for example) matches it against that original id even when the
// node itself was replaced in between.
//
// # Passes
//
// Transform applies the visitor list in order, once per pass, threading
// the tree through each visitor's full descent. A pass is stable only
// when the last visitor keeps the whole tree; otherwise the pass counter
// advances and the list runs again. Interdependent rewrites converge this
// way without knowing about each other, at the cost of the caller
// bounding the number of passes.
//
// # One-shot visitors
//
// Once wraps a visitor so each node id is processed at most once across
// all passes. Because cloning a node always issues fresh ids, a value
// spliced into a new location is processed again even when it is
// byte-for-byte identical to one seen before.
package transform
