package parse

import (
	"testing"

	"github.com/signadot/toml-format/ast"
)

// arrayComments parses a single `a = <array>` document and returns the
// per-element comment sequences.
func arrayComments(t *testing.T, arr string) []ast.Comments {
	t.Helper()
	tbl := mustParse(t, "a = "+arr+"\n")
	v := tbl.Get("a").Value
	if v.Type != ast.ArrayType {
		t.Fatalf("a is %s", v.Type)
	}
	res := make([]ast.Comments, len(v.Items))
	for i, it := range v.Items {
		res[i] = it.Comments
	}
	return res
}

func TestArrayCommentAlignment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []ast.Comments
	}{
		{
			"between elements",
			"[1, 2, # c\n 3]",
			[]ast.Comments{nil, {{Kind: ast.Post, Text: " c"}}, nil},
		},
		{
			"leading own line",
			"[# c\n 1, 2]",
			[]ast.Comments{{{Kind: ast.Pre, Text: " c"}}, nil},
		},
		{
			"trailing before close",
			"[1, 2, # c\n]",
			[]ast.Comments{nil, {{Kind: ast.Post, Text: " c"}}},
		},
		{
			"own line between",
			"[1,\n # c\n 2]",
			[]ast.Comments{nil, {{Kind: ast.Pre, Text: " c"}}},
		},
		{
			"mixed run",
			"[1, # a\n # b\n 2]",
			[]ast.Comments{{{Kind: ast.Post, Text: " a"}}, {{Kind: ast.Pre, Text: " b"}}},
		},
		{
			"own line after last",
			"[1,\n # c\n]",
			[]ast.Comments{{{Kind: ast.Post, Text: " c"}}},
		},
		{
			"no comments",
			"[1, 2]",
			[]ast.Comments{nil, nil},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := arrayComments(t, tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("%d elements, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if len(got[i]) != len(tc.want[i]) {
					t.Errorf("element %d: comments %v, want %v", i, got[i], tc.want[i])
					continue
				}
				for j := range got[i] {
					if got[i][j] != tc.want[i][j] {
						t.Errorf("element %d comment %d: %v, want %v",
							i, j, got[i][j], tc.want[i][j])
					}
				}
			}
		})
	}
}

func TestEmptyArrayCommentsDropped(t *testing.T) {
	tbl := mustParse(t, "a = [ # gone\n]\n")
	v := tbl.Get("a").Value
	if len(v.Items) != 0 {
		t.Fatalf("%d elements", len(v.Items))
	}
}
