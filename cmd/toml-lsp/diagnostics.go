package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/parse"
	"github.com/signadot/toml-format/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	table     *ast.Table
	positions map[*ast.Value]*token.Pos
	parseErr  error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := make(map[*ast.Value]*token.Pos)
	tbl, err := parse.Parse([]byte(content), parse.WithPositions(positions))
	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		table:     tbl,
		positions: positions,
		parseErr:  err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.parseErr == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.parseErr.Error(),
		Source:   "toml",
	}
	if pos := extractPosition(doc.parseErr.Error()); pos != nil {
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col),
			},
			End: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col + 1),
			},
		}
	}
	return append(diagnostics, diagnostic)
}

type position struct {
	line int
	col  int
}

// extractPosition scrapes the "line=X, col=Y" rendering of token.Pos
// out of an error message.
func extractPosition(errMsg string) *position {
	var line, col int
	_, err := fmt.Sscanf(errMsg, "%*[^l]line=%d%*[^c]col=%d", &line, &col)
	if err != nil {
		return nil
	}
	return &position{line: line, col: col}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 &&
			rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// full document replacement
			content = change.Text
			continue
		}
		startOffset := lineColToOffset(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
		endOffset := lineColToOffset(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
		if startOffset <= len(content) && endOffset <= len(content) && startOffset <= endOffset {
			content = content[:startOffset] + change.Text + content[endOffset:]
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
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
