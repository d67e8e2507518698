package token

import (
	"testing"
)

func TestMatchKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
		want string
		ok   bool
	}{
		{"<Quote>", EnvOpen, "<", true},
		{"<>", EnvOpen, "", false},
		{"< space", EnvOpen, "", false},
		{"<1x", EnvOpen, "", false},
		{"<>", FragmentOpen, "<>", true},
		{"</>", FragmentClose, "</>", true},
		{"/>", SelfClose, "/>", true},
		{">", RightAngle, ">", true},
		{"/**x", CommentOpen, "/**", true},
		{"*/", CommentClose, "*/", true},
		{"${x}", DollarBrace, "${", true},
		{"$x$", Dollar, "$", true},
		{"}", RightBrace, "}", true},
		{"=", Equals, "=", true},
		{`"`, Quote, `"`, true},
		{"  \t\nx", Whitespace, "  \t\n", true},
		{"x ", Whitespace, "", false},
		{"\nrest", EndOfLine, "\n", true},
		{"", EndOfModule, "", true},
		{"x", EndOfModule, "", false},
		{"# Title", HeadingOpen, "# ", true},
		{"### Title", HeadingOpen, "### ", true},
		{"#Title", HeadingOpen, "", false},
		{"</Quote> tail", EnvClose("</Quote>"), "</Quote>", true},
		{"</Other>", EnvClose("</Quote>"), "", false},
	}
	for _, tt := range tests {
		s := NewSource(tt.src)
		got, ok := s.Match(tt.kind)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Match(%q, %s) = %q, %v; want %q, %v",
				tt.src, tt.kind, got, ok, tt.want, tt.ok)
		}
		if ok && s.Rest() != tt.src[len(tt.want):] {
			t.Errorf("Match(%q, %s) left rest %q", tt.src, tt.kind, s.Rest())
		}
		if !ok && s.Rest() != tt.src {
			t.Errorf("failed Match(%q, %s) moved the cursor", tt.src, tt.kind)
		}
	}
}

func TestMatchCaptureOnlyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on capture-only kind")
		}
	}()
	NewSource("x").Match(Text)
}

func TestNextUnescaped(t *testing.T) {
	s := NewSource(`a\<b`)
	if r, _ := s.NextUnescaped(); r != 'a' {
		t.Fatalf("got %q, want 'a'", r)
	}
	// the backslash neutralizes the '<'
	if r, _ := s.NextUnescaped(); r != '<' {
		t.Fatalf("got %q, want '<'", r)
	}
	if s.Pos().Off != 3 {
		t.Fatalf("offset = %d, want 3", s.Pos().Off)
	}
	if _, ok := s.Match(EnvOpen); ok {
		t.Fatal("EnvOpen must not match at 'b'")
	}
}

func TestPosTracking(t *testing.T) {
	s := NewSource("ab\ncd")
	for range 4 {
		s.Next()
	}
	p := s.Pos()
	if p.Line != 1 || p.Col != 1 || p.Off != 4 {
		t.Fatalf("pos = %+v, want line=1 col=1 off=4", p)
	}
}

func TestPosAdvanceMultibyte(t *testing.T) {
	var p Pos
	if n := p.Advance('ä'); n != 2 {
		t.Fatalf("Advance('ä') = %d bytes, want 2", n)
	}
	if p.Off != 2 || p.Col != 1 {
		t.Fatalf("pos = %+v, want off=2 col=1", p)
	}
}
