package ast

// Merge folds the entries of other into t. Nested tables merge
// recursively, arrays append, and any other collision is a structural
// conflict surfaced on the first key it occurs at.
func (t *Table) Merge(other *Table) error {
	for _, k := range other.keys {
		src := other.elems[k]
		dst := t.elems[k]
		if dst == nil {
			t.Set(k, src)
			continue
		}
		if err := mergeItems(k, dst, src); err != nil {
			return err
		}
	}
	return nil
}

func mergeItems(key string, dst, src *Item) error {
	switch {
	case dst.Value.Type == TableType && src.Value.Type == TableType:
		dst.Comments = append(dst.Comments, src.Comments...)
		return dst.Value.Table.Merge(src.Value.Table)
	case dst.Value.Type == ArrayType && src.Value.Type == ArrayType:
		dst.Value.Items = append(dst.Value.Items, src.Value.Items...)
		return nil
	case src.Value.Type == TableType:
		return extendErr(key, dst.Value.Type)
	default:
		return duplicateKeyErr(key)
	}
}
