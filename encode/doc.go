// Package encode serializes resolved document trees and carries the
// HTML-specific rewrites that prepare a tree for serialization: page
// layout, equation delimiters, code blocks, and the KaTeX resources the
// rendered page loads.
//
// Encode is a sink-driven streaming writer. It assumes transforms ran
// first; anything still unresolved (an error node) fails the encode
// rather than leaking into output.
package encode
