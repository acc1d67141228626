package ast

import (
	"time"
)

// Type discriminates the closed set of value kinds. New kinds must be
// handled by every consumer switching on Type.
type Type int

const (
	InvalidType Type = iota
	StringType
	IntegerType
	FloatType
	BoolType
	DateTimeType
	ArrayType
	TableType
)

func (t Type) String() string {
	switch t {
	case StringType:
		return "string"
	case IntegerType:
		return "integer"
	case FloatType:
		return "float"
	case BoolType:
		return "boolean"
	case DateTimeType:
		return "datetime"
	case ArrayType:
		return "array"
	case TableType:
		return "table"
	}
	return "invalid"
}

// Base records the numeric base an integer literal was written in.
type Base int

const (
	BaseDecimal Base = iota
	BaseBinary
	BaseOctal
	BaseHex
)

// FloatRepr records how a float literal was written.
type FloatRepr int

const (
	FloatDecimal FloatRepr = iota
	FloatScientific
)

// Value is a typed tree node. Type selects which payload fields are
// meaningful; besides the decoded value each scalar payload keeps the
// formatting provenance needed to re-serialize the original literal.
type Value struct {
	Type Type

	Str       Quoted
	Int       int64
	IntBase   Base
	Float     float64
	FloatRepr FloatRepr
	Bool      bool
	Time      time.Time

	Items []*Item
	Table *Table
}

func FromQuoted(q Quoted) *Value {
	return &Value{Type: StringType, Str: q}
}

func FromString(v string) *Value {
	return FromQuoted(NewQuoted(v))
}

func FromInt(v int64, base Base) *Value {
	return &Value{Type: IntegerType, Int: v, IntBase: base}
}

func FromFloat(v float64, repr FloatRepr) *Value {
	return &Value{Type: FloatType, Float: v, FloatRepr: repr}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromTime(v time.Time) *Value {
	return &Value{Type: DateTimeType, Time: v}
}

func FromItems(items []*Item) *Value {
	return &Value{Type: ArrayType, Items: items}
}

func FromTable(t *Table) *Value {
	return &Value{Type: TableType, Table: t}
}

func (v *Value) SameType(o *Value) bool {
	return v.Type == o.Type
}

// AsTable extracts the table if this value is a table.
func (v *Value) AsTable() (*Table, bool) {
	if v.Type != TableType {
		return nil, false
	}
	return v.Table, true
}

// AsArray extracts the elements if this value is an array.
func (v *Value) AsArray() ([]*Item, bool) {
	if v.Type != ArrayType {
		return nil, false
	}
	return v.Items, true
}

// IsArrayOfTables reports whether this value is a non-empty array
// whose elements are all tables.
func (v *Value) IsArrayOfTables() bool {
	if v.Type != ArrayType || len(v.Items) == 0 {
		return false
	}
	for _, it := range v.Items {
		if it.Value.Type != TableType {
			return false
		}
	}
	return true
}

// Item pairs a value with its attached comment sequence. Array
// elements and table entries are items.
type Item struct {
	Comments Comments
	Value    *Value
}

func NewItem(comments Comments, v *Value) *Item {
	return &Item{Comments: comments, Value: v}
}

func ItemOf(v *Value) *Item {
	return &Item{Value: v}
}

// Wrap nests an item under a dotted key, yielding the single-entry
// table chain `k0: {k1: {... item}}`. An empty key yields the item's
// value unchanged.
func Wrap(key Key, item *Item) *Value {
	if len(key) == 0 {
		return item.Value
	}
	for i := len(key) - 1; i >= 0; i-- {
		t := NewTable()
		t.Set(key[i].Text, item)
		item = ItemOf(FromTable(t))
	}
	return item.Value
}

// Table is the insertion-ordered mapping from decoded key text to
// items. Order is observable: it drives serialization, not lookup.
type Table struct {
	keys  []string
	elems map[string]*Item
}

func NewTable() *Table {
	return &Table{elems: map[string]*Item{}}
}

func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the key texts in insertion order. The slice is owned by
// the table.
func (t *Table) Keys() []string {
	return t.keys
}

func (t *Table) Get(key string) *Item {
	return t.elems[key]
}

// Set inserts or replaces an entry. Insertion order is preserved on
// replace.
func (t *Table) Set(key string, item *Item) {
	if _, ok := t.elems[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.elems[key] = item
}

// At returns the i-th entry in insertion order.
func (t *Table) At(i int) (string, *Item) {
	k := t.keys[i]
	return k, t.elems[k]
}
