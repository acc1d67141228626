package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/encode"
	"github.com/signadot/toml-format/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.table == nil {
		return nil, nil
	}

	pos := params.Position
	target := findValueAtPosition(doc.table, doc.positions, int(pos.Line), int(pos.Character))
	if target == nil {
		return nil, nil
	}

	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findValueAtPosition picks the value whose recorded position is on
// the requested line and closest to the requested column.
func findValueAtPosition(root *ast.Table, positions map[*ast.Value]*token.Pos, line, col int) *ast.Value {
	var bestValue *ast.Value
	var bestPos *token.Pos

	var visit func(v *ast.Value)
	visit = func(v *ast.Value) {
		if v == nil {
			return
		}
		if pos := positions[v]; pos != nil {
			posLine, posCol := pos.LineCol()
			if posLine == line {
				if bestPos == nil || abs(posCol-col) < abs(bestPos.Col()-col) {
					bestValue = v
					bestPos = pos
				}
			}
		}
		switch v.Type {
		case ast.ArrayType:
			for _, it := range v.Items {
				visit(it.Value)
			}
		case ast.TableType:
			for i := 0; i < v.Table.Len(); i++ {
				_, item := v.Table.At(i)
				visit(item.Value)
			}
		}
	}

	visit(ast.FromTable(root))
	return bestValue
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func buildHoverText(v *ast.Value) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", v.Type)
	switch v.Type {
	case ast.TableType:
		fmt.Fprintf(&b, "%d entries\n", v.Table.Len())
	case ast.ArrayType:
		fmt.Fprintf(&b, "%d elements\n", len(v.Items))
	default:
		buf := &strings.Builder{}
		if err := encode.EncodeValue(v, buf); err != nil {
			return ""
		}
		fmt.Fprintf(&b, "```\n%s\n```\n", buf.String())
	}
	return b.String()
}
