package ast

import (
	"errors"
	"testing"
)

func headerLine(kind HeaderKind, texts ...string) Line {
	return Line{Data: &Data{Header: &Header{Kind: kind, Key: KeyOf(texts...)}}}
}

func kvLine(v *Value, texts ...string) Line {
	return Line{Data: &Data{KeyValue: &KeyValue{Key: KeyOf(texts...), Value: v}}}
}

func TestLinesTable(t *testing.T) {
	lines := Lines{
		kvLine(FromInt(1, BaseDecimal), "top"),
		headerLine(TableHeader, "server"),
		kvLine(FromInt(8080, BaseDecimal), "port"),
		kvLine(FromString("x"), "tls", "cert"),
		headerLine(TableHeader, "server", "limits"),
		kvLine(FromInt(10, BaseDecimal), "conns"),
	}
	root, err := lines.Table()
	if err != nil {
		t.Fatal(err)
	}
	if root.Get("top").Value.Int != 1 {
		t.Error("top lost")
	}
	server := root.Get("server").Value.Table
	if server.Get("port").Value.Int != 8080 {
		t.Error("port lost")
	}
	if server.Get("tls").Value.Table.Get("cert").Value.Str.Value != "x" {
		t.Error("dotted key lost")
	}
	if server.Get("limits").Value.Table.Get("conns").Value.Int != 10 {
		t.Error("nested header lost")
	}
}

func TestLinesArrayOfTables(t *testing.T) {
	lines := Lines{
		headerLine(ArrayOfTablesHeader, "srv"),
		kvLine(FromString("a"), "name"),
		headerLine(ArrayOfTablesHeader, "srv"),
		kvLine(FromString("b"), "name"),
	}
	root, err := lines.Table()
	if err != nil {
		t.Fatal(err)
	}
	arr := root.Get("srv").Value
	if !arr.IsArrayOfTables() || len(arr.Items) != 2 {
		t.Fatalf("srv: %v elements", len(arr.Items))
	}
	if arr.Items[0].Value.Table.Get("name").Value.Str.Value != "a" {
		t.Error("first element lost")
	}
	if arr.Items[1].Value.Table.Get("name").Value.Str.Value != "b" {
		t.Error("second element lost")
	}
}

func TestLinesComments(t *testing.T) {
	lines := Lines{
		{Meta: &Comment{Pre, " doc"}},
		{},
		{Data: &Data{KeyValue: &KeyValue{Key: KeyOf("a"), Value: FromInt(1, BaseDecimal)}},
			Meta: &Comment{Post, " trailing"}},
		{Meta: &Comment{Pre, " section"}},
		{Data: &Data{Header: &Header{Kind: TableHeader, Key: KeyOf("s")}}},
		kvLine(FromInt(2, BaseDecimal), "b"),
	}
	root, err := lines.Table()
	if err != nil {
		t.Fatal(err)
	}
	cs := root.Get("a").Comments
	if len(cs) != 2 || cs[0] != (Comment{Pre, " doc"}) || cs[1] != (Comment{Post, " trailing"}) {
		t.Fatalf("a comments %v", cs)
	}
	scs := root.Get("s").Comments
	if len(scs) != 1 || scs[0] != (Comment{Pre, " section"}) {
		t.Fatalf("s comments %v", scs)
	}
}

func TestLinesDuplicateKey(t *testing.T) {
	lines := Lines{
		kvLine(FromInt(1, BaseDecimal), "a"),
		kvLine(FromInt(2, BaseDecimal), "a"),
	}
	if _, err := lines.Table(); !errors.Is(err, ErrStructural) {
		t.Fatalf("got %v, want %v", nil, ErrStructural)
	}
}

func TestLinesHeaderThenDottedConflict(t *testing.T) {
	lines := Lines{
		headerLine(TableHeader, "a"),
		kvLine(FromInt(1, BaseDecimal), "b"),
		headerLine(TableHeader, "a", "b"),
	}
	_, err := lines.Table()
	if !errors.Is(err, ErrStructural) {
		t.Fatalf("got %v, want structural error", err)
	}
}
