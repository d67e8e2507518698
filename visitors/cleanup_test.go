package visitors

import (
	"testing"

	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/encode"
	"github.com/adrian-kriegel/vtx/parse"
	"github.com/adrian-kriegel/vtx/transform"
)

func runOne(t *testing.T, src string, v transform.Visitor) string {
	t.Helper()
	g := &doc.IDGen{}
	root, diags := parse.Parse(src, parse.WithIDGen(g))
	if len(diags) != 0 {
		t.Fatalf("parse diags: %v", diags)
	}
	out, err := transform.Transform(root, []transform.Visitor{v}, 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := encode.Bytes(out)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestCleanupStripsEdges(t *testing.T) {
	// the body parses as [Text "\n  ", <b>, Text "\n"]
	got := runOne(t, "<Quote>\n  <b>x</b>\n</Quote>", Cleanup{})
	if got != "<Quote><b>x</b></Quote>" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanupKeepsNonBlankEdges(t *testing.T) {
	got := runOne(t, "<Quote> a <b>x</b> b </Quote>", Cleanup{})
	if got != "<Quote> a <b>x</b> b </Quote>" {
		t.Fatalf("got %q", got)
	}
}

func TestStripComments(t *testing.T) {
	got := runOne(t, "a/** gone */b", StripComments{})
	if got != "ab" {
		t.Fatalf("got %q", got)
	}
}

func TestCommentsSurviveWithoutStrip(t *testing.T) {
	got := runOne(t, "a/**x*/b", transform.Base{})
	if got != "a/**x*/b" {
		t.Fatalf("got %q", got)
	}
}
