package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/parse"
	"github.com/adrian-kriegel/vtx/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	root    *doc.Node
	diags   []token.Diag
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	// parsing never fails, so stale trees never linger on bad input
	root, diags := parse.Parse(content)
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		root:    root,
		diags:   diags,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	d := s.docs.get(uri)
	if d == nil {
		return
	}

	diagnostics := make([]protocol.Diagnostic, 0, len(d.diags))
	for _, dg := range d.diags {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(dg.Pos.Line),
					Character: uint32(dg.Pos.Col),
				},
				End: protocol.Position{
					Line:      uint32(dg.Pos.Line),
					Character: uint32(dg.Pos.Col + 1),
				},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  dg.Err.Error(),
			Source:   "vtx",
		})
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return nil
	}

	content := d.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// full document replacement
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	idx := 0
	for _, r := range content {
		if currentLine == line && currentCol == col {
			return idx
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
		idx++
	}
	return idx
}
