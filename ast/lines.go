package ast

// HeaderKind distinguishes `[key]` table headers from `[[key]]`
// array-of-tables headers.
type HeaderKind int

const (
	TableHeader HeaderKind = iota
	ArrayOfTablesHeader
)

func (k HeaderKind) String() string {
	if k == ArrayOfTablesHeader {
		return "array of tables"
	}
	return "table"
}

// Header is a `[key]` or `[[key]]` line.
type Header struct {
	Kind HeaderKind
	Key  Key
}

// KeyValue is a `key = value` line.
type KeyValue struct {
	Key   Key
	Value *Value
}

// Data is the content of a line: exactly one of Header or KeyValue.
type Data struct {
	Header   *Header
	KeyValue *KeyValue
}

// Line is one logical source line: optional data and an optional
// comment. The comment is Post when data is present (it shares the
// line) and Pre otherwise (the line is comment-only, documenting what
// follows). A fully blank line has neither.
type Line struct {
	Data *Data
	Meta *Comment
}

// Lines is the flat line sequence produced by the grammar.
type Lines []Line

// Table folds the line sequence into the root table. A table header
// re-scopes insertion to the named nested table; an array-of-tables
// header appends a fresh table to the named array and scopes there;
// key-value lines insert under the current scope, creating
// intermediate tables along dotted paths. The first structural
// conflict aborts the fold.
func (ls Lines) Table() (*Table, error) {
	root := NewTable()
	var headed *headedState
	var comments Comments

	flush := func() error {
		if headed == nil {
			return nil
		}
		err := headed.foldInto(root)
		headed = nil
		return err
	}

	for i := range ls {
		ln := &ls[i]
		switch {
		case ln.Data == nil:
			comments.maybePush(ln.Meta)
		case ln.Data.Header != nil:
			comments.maybePush(ln.Meta)
			if err := flush(); err != nil {
				return nil, err
			}
			headed = &headedState{
				comments: comments,
				kind:     ln.Data.Header.Kind,
				key:      ln.Data.Header.Key,
				inner:    NewTable(),
			}
			comments = nil
		default:
			kv := ln.Data.KeyValue
			comments.maybePush(ln.Meta)
			item := NewItem(comments, kv.Value)
			comments = nil
			scope := root
			if headed != nil {
				scope = headed.inner
			}
			wrapped := Wrap(kv.Key, item)
			if err := scope.Merge(wrapped.Table); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return root, nil
}

// headedState is the insertion scope opened by the most recent header,
// held apart from the root until the next header (or end of input)
// folds it in.
type headedState struct {
	comments Comments
	kind     HeaderKind
	key      Key
	inner    *Table
}

func (h *headedState) foldInto(root *Table) error {
	item := NewItem(h.comments, FromTable(h.inner))
	if h.kind == ArrayOfTablesHeader {
		item = ItemOf(FromItems([]*Item{item}))
	}
	wrapped := Wrap(h.key, item)
	return root.Merge(wrapped.Table)
}
