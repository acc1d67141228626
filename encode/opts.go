package encode

type EncodeOption func(*EncState)

// Indent sets the indent width used inside multi-line arrays.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeComments controls whether attached comments are written out.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
