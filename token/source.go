package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Source is a cursor over a fully materialized module. Matching either
// consumes the matched substring or leaves the cursor untouched; there is
// no lookahead state beyond the cursor itself.
type Source struct {
	rest string
	pos  Pos
}

func NewSource(src string) *Source {
	return &Source{rest: src}
}

func (s *Source) Pos() Pos {
	return s.pos
}

// Rest returns the unconsumed tail of the module.
func (s *Source) Rest() string {
	return s.rest
}

func (s *Source) AtEnd() bool {
	return len(s.rest) == 0
}

// Next consumes one rune and advances the position.
func (s *Source) Next() (rune, bool) {
	if len(s.rest) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.rest)
	s.pos.Advance(r)
	s.rest = s.rest[size:]
	return r, true
}

// NextUnescaped consumes one rune; a backslash consumes and neutralizes
// the rune after it, so escaped structural characters never match.
func (s *Source) NextUnescaped() (rune, bool) {
	r, ok := s.Next()
	if !ok {
		return 0, false
	}
	if r == '\\' {
		return s.Next()
	}
	return r, true
}

// skip consumes the runes of a matched value, keeping Line/Col exact.
func (s *Source) skip(matched string) {
	for range matched {
		s.Next()
	}
}

// Match tests whether kind k occurs at the cursor. On a match the value is
// consumed and returned; on failure the cursor is untouched.
func (s *Source) Match(k Kind) (string, bool) {
	rest := s.rest

	var v string
	ok := false
	switch k.t {
	case kEnvOpen:
		if len(rest) > 1 && rest[0] == '<' && isASCIILetter(rest[1]) {
			v, ok = rest[:1], true
		}
	case kFragmentOpen:
		v, ok = prefix(rest, "<>")
	case kFragmentClose:
		v, ok = prefix(rest, "</>")
	case kEnvClose:
		v, ok = prefix(rest, k.lit)
	case kSelfClose:
		v, ok = prefix(rest, "/>")
	case kRightAngle:
		v, ok = prefix(rest, ">")
	case kCommentOpen:
		v, ok = prefix(rest, "/**")
	case kCommentClose:
		v, ok = prefix(rest, "*/")
	case kWhitespace:
		n := 0
		for _, r := range rest {
			if !unicode.IsSpace(r) {
				break
			}
			n += utf8.RuneLen(r)
		}
		if n > 0 {
			v, ok = rest[:n], true
		}
	case kEndOfLine:
		v, ok = prefix(rest, "\n")
	case kEndOfModule:
		if len(rest) == 0 {
			v, ok = "", true
		}
	case kDollarBrace:
		v, ok = prefix(rest, "${")
	case kRightBrace:
		v, ok = prefix(rest, "}")
	case kDollar:
		v, ok = prefix(rest, "$")
	case kEquals:
		v, ok = prefix(rest, "=")
	case kQuote:
		v, ok = prefix(rest, `"`)
	case kHeadingOpen:
		v, ok = matchHeading(rest)
	default:
		panic("token: capture-only kind " + k.String() + " used for matching")
	}
	if !ok {
		return "", false
	}
	s.skip(v)
	return v, true
}

func prefix(s, lit string) (string, bool) {
	if strings.HasPrefix(s, lit) {
		return lit, true
	}
	return "", false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// matchHeading matches a run of '#' followed by a space; the match value
// includes the space, so the heading level is len(value)-1.
func matchHeading(s string) (string, bool) {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n > 0 && n < len(s) && s[n] == ' ' {
		return s[:n+1], true
	}
	return "", false
}
