package ast

import (
	"errors"
	"testing"
)

func kvTable(pairs ...any) *Table {
	t := NewTable()
	for i := 0; i < len(pairs); i += 2 {
		t.Set(pairs[i].(string), ItemOf(pairs[i+1].(*Value)))
	}
	return t
}

func TestMergeTables(t *testing.T) {
	dst := kvTable("a", FromInt(1, BaseDecimal), "sub", FromTable(kvTable("x", FromInt(2, BaseDecimal))))
	src := kvTable("b", FromInt(3, BaseDecimal), "sub", FromTable(kvTable("y", FromInt(4, BaseDecimal))))
	if err := dst.Merge(src); err != nil {
		t.Fatal(err)
	}
	if got := dst.Keys(); len(got) != 3 || got[0] != "a" || got[1] != "sub" || got[2] != "b" {
		t.Fatalf("keys %v", got)
	}
	sub := dst.Get("sub").Value.Table
	if sub.Len() != 2 || sub.Get("x") == nil || sub.Get("y") == nil {
		t.Fatalf("sub keys %v", sub.Keys())
	}
}

func TestMergeArrays(t *testing.T) {
	dst := kvTable("arr", FromItems([]*Item{ItemOf(FromTable(kvTable("a", FromInt(1, BaseDecimal))))}))
	src := kvTable("arr", FromItems([]*Item{ItemOf(FromTable(kvTable("a", FromInt(2, BaseDecimal))))}))
	if err := dst.Merge(src); err != nil {
		t.Fatal(err)
	}
	arr := dst.Get("arr").Value
	if len(arr.Items) != 2 {
		t.Fatalf("got %d elements", len(arr.Items))
	}
	if arr.Items[1].Value.Table.Get("a").Value.Int != 2 {
		t.Error("appended element lost")
	}
}

func TestMergeComments(t *testing.T) {
	dst := NewTable()
	dst.Set("sub", NewItem(Comments{{Pre, " one"}}, FromTable(NewTable())))
	src := NewTable()
	src.Set("sub", NewItem(Comments{{Pre, " two"}}, FromTable(NewTable())))
	if err := dst.Merge(src); err != nil {
		t.Fatal(err)
	}
	cs := dst.Get("sub").Comments
	if len(cs) != 2 || cs[0].Text != " one" || cs[1].Text != " two" {
		t.Fatalf("comments %v", cs)
	}
}

func TestMergeConflicts(t *testing.T) {
	tests := []struct {
		name     string
		dst, src *Table
	}{
		{
			"scalar-scalar",
			kvTable("a", FromInt(1, BaseDecimal)),
			kvTable("a", FromInt(2, BaseDecimal)),
		},
		{
			"table-scalar",
			kvTable("a", FromTable(NewTable())),
			kvTable("a", FromInt(1, BaseDecimal)),
		},
		{
			"scalar-table",
			kvTable("a", FromInt(1, BaseDecimal)),
			kvTable("a", FromTable(NewTable())),
		},
		{
			"array-table",
			kvTable("a", FromItems(nil)),
			kvTable("a", FromTable(NewTable())),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dst.Merge(tc.src)
			if !errors.Is(err, ErrStructural) {
				t.Errorf("got %v, want %v", err, ErrStructural)
			}
		})
	}
}
