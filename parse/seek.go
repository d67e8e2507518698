package parse

import (
	"slices"

	"github.com/adrian-kriegel/vtx/token"
)

// seekTo advances one (possibly escaped) character at a time until one of
// kinds matches at the cursor, and returns the matched token. If input is
// exhausted first, it returns a synthetic EndOfModule token when that kind
// was requested, else nil.
func (p *Parser) seekTo(kinds []token.Kind) *token.Token {
	for !p.src.AtEnd() {
		for _, k := range kinds {
			pos := p.src.Pos()
			if v, ok := p.src.Match(k); ok {
				return &token.Token{Kind: k, Value: v, Pos: pos}
			}
		}
		p.src.NextUnescaped()
	}
	if slices.Contains(kinds, token.EndOfModule) {
		return &token.Token{Kind: token.EndOfModule, Pos: p.src.Pos()}
	}
	return nil
}

// seekToAndCapture seeks to the nearest of kinds, recording the span
// consumed before the end token as a token of capture kind. The capture
// handle is token.None when the span is empty: "nothing here" is distinct
// from an empty string. If no end token is found, a diagnostic is
// recorded and an EndOfModule token is synthesized so the caller can
// continue deterministically.
//
// This is the single substring-scanning primitive under every production
// rule: text runs, attribute names and values, comment bodies, math
// bodies, and raw tag bodies all go through here.
func (p *Parser) seekToAndCapture(capture token.Kind, kinds []token.Kind) (token.Handle, token.Handle) {
	startPos := p.src.Pos()
	startRest := p.src.Rest()

	end := p.seekTo(kinds)

	endOff := p.src.Pos().Off
	if end != nil {
		endOff = end.Pos.Off
	}
	n := endOff - startPos.Off

	capH := token.None
	if n > 0 {
		capH = p.store.Push(token.Token{
			Kind:  capture,
			Value: startRest[:n],
			Pos:   startPos,
		})
	}

	var endH token.Handle
	if end != nil {
		endH = p.store.Push(*end)
	} else {
		// error position is where the seek began
		p.store.AddDiag(errExpected(kinds), startPos)
		endH = p.store.Push(token.Token{Kind: token.EndOfModule, Pos: p.src.Pos()})
	}
	return capH, endH
}
