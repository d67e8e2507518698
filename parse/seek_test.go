package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/token"
)

func testParser(src string) *Parser {
	return &Parser{
		src:   token.NewSource(src),
		store: token.NewStore(),
		modes: NewModes(),
		ids:   &doc.IDGen{},
	}
}

func TestSeekToAndCapture(t *testing.T) {
	src := "hello </Document> world"
	p := testParser(src)
	capH, endH := p.seekToAndCapture(token.Text, []token.Kind{token.EnvClose("</Document>")})

	if got := p.store.Value(capH); got != "hello " {
		t.Errorf("captured %q, want %q", got, "hello ")
	}
	end := p.store.Get(endH)
	if end.Pos.Off != strings.Index(src, "</Document>") {
		t.Errorf("end offset = %d, want %d", end.Pos.Off, strings.Index(src, "</Document>"))
	}
	if p.src.Rest() != " world" {
		t.Errorf("rest = %q, want %q", p.src.Rest(), " world")
	}
	if len(p.store.Diags()) != 0 {
		t.Errorf("unexpected diags: %v", p.store.Diags())
	}
}

func TestSeekToAndCaptureEscaped(t *testing.T) {
	src := `hello \</Document> world </Document>`
	p := testParser(src)
	capH, _ := p.seekToAndCapture(token.Text, []token.Kind{token.EnvClose("</Document>")})

	wantEnd := strings.LastIndex(src, "</Document>")
	if got := p.store.Value(capH); got != src[:wantEnd] {
		t.Errorf("captured %q, want %q", got, src[:wantEnd])
	}
	if got := p.store.Get(capH); got.Pos.Off != 0 {
		t.Errorf("capture offset = %d, want 0", got.Pos.Off)
	}
}

func TestSeekToAndCaptureEOF(t *testing.T) {
	src := "never closed"
	p := testParser(src)
	capH, endH := p.seekToAndCapture(token.Text, []token.Kind{token.EnvClose("</Document>")})

	if got := p.store.Value(capH); got != src {
		t.Errorf("captured %q, want %q", got, src)
	}
	end := p.store.Get(endH)
	if end.Kind != token.EndOfModule {
		t.Errorf("end kind = %s, want %s", end.Kind, token.EndOfModule)
	}
	diags := p.store.Diags()
	if len(diags) != 1 {
		t.Fatalf("got %d diags, want 1", len(diags))
	}
	if !errors.Is(diags[0].Err, ErrUnexpectedEOF) {
		t.Errorf("diag = %v, want ErrUnexpectedEOF", diags[0].Err)
	}
	if diags[0].Pos.Off != 0 {
		t.Errorf("diag offset = %d, want 0 (where the seek began)", diags[0].Pos.Off)
	}
}

func TestSeekToEmptyCapture(t *testing.T) {
	p := testParser("}rest")
	capH, _ := p.seekToAndCapture(token.VariableName, []token.Kind{token.RightBrace})
	if capH != token.None {
		t.Errorf("capture handle = %d, want None for an empty span", capH)
	}
}

func TestSeekToEOFSynthesized(t *testing.T) {
	p := testParser("tail text")
	tok := p.seekTo([]token.Kind{token.EndOfModule})
	if tok == nil || tok.Kind != token.EndOfModule {
		t.Fatalf("got %v, want synthesized EndOfModule", tok)
	}
	if tok.Pos.Off != len("tail text") {
		t.Errorf("offset = %d, want end of input", tok.Pos.Off)
	}
}
