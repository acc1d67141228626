package main

import (
	"bytes"
	"context"

	"github.com/signadot/toml-format/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.parseErr != nil || doc.table == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := encode.Encode(doc.table, &buf); err != nil {
		return nil, nil
	}
	formatted := buf.String()

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
