// Package visitors holds the standard document rewrites: component
// definition and expansion, variable scoping and substitution, comment
// stripping and whitespace cleanup. Each is a transform.Visitor; the
// pipeline in the root package wires them in their canonical order.
package visitors
