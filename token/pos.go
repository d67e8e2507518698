package token

import (
	"fmt"
	"unicode/utf8"
)

// Pos is a cursor into a source module. Off is the absolute byte offset
// and the sole ordering key; Line and Col are carried along for display
// and diagnostics only.
type Pos struct {
	Line int
	Col  int
	Off  int
}

// Advance moves the position past r and returns the number of bytes
// consumed.
func (p *Pos) Advance(r rune) int {
	if r == '\n' {
		p.Line++
		p.Col = 0
	} else {
		p.Col++
	}
	n := utf8.RuneLen(r)
	p.Off += n
	return n
}

// Before orders positions by byte offset.
func (p Pos) Before(q Pos) bool {
	return p.Off < q.Off
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Off, p.Line, p.Col)
}
