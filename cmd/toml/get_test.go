package main

import (
	"reflect"
	"testing"

	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/parse"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"servers.0.host", []string{"servers", "0", "host"}},
		{"'lit.key'", []string{"lit.key"}},
		{`a."b.c".d`, []string{"a", "b.c", "d"}},
		{`"tab\there"`, []string{"tab\there"}},
	}
	for _, tc := range tests {
		got, err := splitPath(tc.in)
		if err != nil {
			t.Errorf("splitPath(%q): %v", tc.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitPath(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitPathErrs(t *testing.T) {
	for _, in := range []string{"", "a.", ".a", "a..b", "a,b", `'''m'''`} {
		if _, err := splitPath(in); err == nil {
			t.Errorf("splitPath(%q): expected error", in)
		}
	}
}

func TestLookupQuotedSegments(t *testing.T) {
	tbl, err := parse.ParseString("['x.y']\nz = 1\nitems = [{name = 'a'}, {name = 'b'}]\n")
	if err != nil {
		t.Fatal(err)
	}
	path, err := splitPath("'x.y'.z")
	if err != nil {
		t.Fatal(err)
	}
	v := lookup(tbl, path)
	if v == nil || v.Type != ast.IntegerType || v.Int != 1 {
		t.Errorf("lookup %v = %v, want 1", path, v)
	}
	path, err = splitPath("'x.y'.items.1.name")
	if err != nil {
		t.Fatal(err)
	}
	v = lookup(tbl, path)
	if v == nil || v.Type != ast.StringType || v.Str.Value != "b" {
		t.Errorf("lookup %v = %v, want \"b\"", path, v)
	}
	if v := lookup(tbl, []string{"x", "y"}); v != nil {
		t.Errorf("lookup [x y] = %v, want nil", v)
	}
}
