package vtx

import (
	"errors"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/adrian-kriegel/vtx/transform"
	"github.com/adrian-kriegel/vtx/visitors"
)

func html(t *testing.T, src string) string {
	t.Helper()
	var sb strings.Builder
	diags, err := New().HTML(src, func(p []byte) error {
		sb.Write(p)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("diags: %v", diags)
	}
	return sb.String()
}

func TestHTMLGolden(t *testing.T) {
	got := html(t, "hi")
	want := "<!DOCTYPE html>\n<html><head>" +
		`<meta charset="utf-8" />` +
		`<link href="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.css" rel="stylesheet" />` +
		`<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.js"></script>` +
		`<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/contrib/auto-render.min.js"></script>` +
		`<script>window.addEventListener("DOMContentLoaded",function(){renderMathInElement(document.body);});</script>` +
		"</head><body>hi</body></html>"
	if got != want {
		dmp := diffmatchpatch.New()
		t.Fatalf("output differs:\n%s", dmp.DiffPrettyText(dmp.DiffMain(want, got, false)))
	}
}

func TestHTMLDocument(t *testing.T) {
	src := `# Energy

<Component Warn><aside class="warn">${children}</aside></Component>

/** internal note */
The relation $E = mc^2$ holds.

<Warn>handle with care</Warn>
`
	got := html(t, src)

	for _, want := range []string{
		"<h1>Energy</h1>",
		`<aside class="warn">handle with care</aside>`,
		`\(E = mc^2\)`,
		"<body>",
		"katex.min.js",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "internal note") {
		t.Error("comment leaked into output")
	}
	if strings.Contains(got, "<Warn>") || strings.Contains(got, "Component") {
		t.Error("component markup leaked into output")
	}
}

func TestHTMLVariables(t *testing.T) {
	got := html(t, `<var title>Relativity</var><h2>${title}</h2>`)
	if !strings.Contains(got, "<h2>Relativity</h2>") {
		t.Fatalf("output: %s", got)
	}
}

func TestTranspileReportsDiags(t *testing.T) {
	p := New()
	_, diags, err := p.Transpile("<quote>unterminated")
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 {
		t.Fatalf("diags = %v, want one", diags)
	}
}

func TestHTMLUnresolvedFails(t *testing.T) {
	_, err := New().HTML("${missing}", func([]byte) error { return nil })
	if !errors.Is(err, visitors.ErrUnresolved) {
		t.Fatalf("err = %v, want ErrUnresolved", err)
	}
}

func TestMaxPassesConfigurable(t *testing.T) {
	p := New()
	p.MaxPasses = 0
	// any rewrite needs at least one unstable pass
	_, _, err := p.Transpile("/**x*/")
	if !errors.Is(err, transform.ErrMaxPasses) {
		t.Fatalf("err = %v, want ErrMaxPasses", err)
	}
}
