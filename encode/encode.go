package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/toml-format/ast"
)

type EncState struct {
	indent   int
	comments bool

	Color func(ast.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:   2,
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes the document form of t: scalar entries first as
// key-value lines, then one header section per nested table and one
// `[[key]]` section per element of each array of tables, recursively.
func Encode(t *ast.Table, w io.Writer, opts ...EncodeOption) error {
	e := &encoder{w: w, es: newEncState(opts)}
	e.table(nil, t)
	return e.err
}

// EncodeValue writes the inline form of a single value.
func EncodeValue(v *ast.Value, w io.Writer, opts ...EncodeOption) error {
	e := &encoder{w: w, es: newEncState(opts)}
	e.write(e.value(v, 0))
	return e.err
}

type encoder struct {
	w  io.Writer
	es *EncState

	// wroteAny separates header sections with blank lines once any
	// output exists.
	wroteAny bool
	err      error
}

func (e *encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
	if s != "" {
		e.wroteAny = true
	}
}

// table writes the entries of t, addressed from the dotted path. The
// root table has an empty path.
func (e *encoder) table(path ast.Key, t *ast.Table) {
	for i := 0; i < t.Len(); i++ {
		key, item := t.At(i)
		if isBranch(item.Value) {
			continue
		}
		e.entry(key, item)
	}
	for i := 0; i < t.Len(); i++ {
		key, item := t.At(i)
		sub := append(append(ast.Key{}, path...), ast.NewSegment(key))
		switch {
		case item.Value.Type == ast.TableType:
			e.section(sub, item.Comments, false)
			e.table(sub, item.Value.Table)
		case item.Value.IsArrayOfTables():
			for _, el := range item.Value.Items {
				e.section(sub, el.Comments, true)
				e.table(sub, el.Value.Table)
			}
		}
	}
}

// isBranch reports whether a value renders as header sections rather
// than an inline key-value line.
func isBranch(v *ast.Value) bool {
	return v.Type == ast.TableType || v.IsArrayOfTables()
}

func (e *encoder) entry(key string, item *ast.Item) {
	e.preComments(item.Comments, item.Value.Type, 0)
	line := e.colored(item.Value.Type, FieldColor, ast.NewSegment(key).String()) +
		e.colored(item.Value.Type, SepColor, " = ") +
		e.value(item.Value, 0)
	e.write(line + e.postComments(item.Comments, item.Value.Type) + "\n")
}

func (e *encoder) section(path ast.Key, comments ast.Comments, arrayed bool) {
	if e.wroteAny {
		e.write("\n")
	}
	e.preComments(comments, ast.TableType, 0)
	op, cl := "[", "]"
	if arrayed {
		op, cl = "[[", "]]"
	}
	header := e.colored(ast.TableType, SepColor, op) +
		e.colored(ast.TableType, HeaderColor, path.String()) +
		e.colored(ast.TableType, SepColor, cl)
	e.write(header + e.postComments(comments, ast.TableType) + "\n")
}

func (e *encoder) preComments(cs ast.Comments, t ast.Type, depth int) {
	if !e.es.comments {
		return
	}
	pad := strings.Repeat(" ", e.es.indent*depth)
	for _, text := range cs.PreTexts() {
		e.write(pad + e.colored(t, CommentColor, "#"+text) + "\n")
	}
}

func (e *encoder) postComments(cs ast.Comments, t ast.Type) string {
	if !e.es.comments {
		return ""
	}
	var b strings.Builder
	for _, text := range cs.PostTexts() {
		b.WriteString(" " + e.colored(t, CommentColor, "#"+text))
	}
	return b.String()
}

// value renders the inline form of v. depth is the nesting level for
// multi-line arrays.
func (e *encoder) value(v *ast.Value, depth int) string {
	switch v.Type {
	case ast.StringType:
		return e.colored(v.Type, ValueColor, v.Str.Render())
	case ast.IntegerType:
		return e.colored(v.Type, ValueColor, formatInt(v.Int, v.IntBase))
	case ast.FloatType:
		return e.colored(v.Type, ValueColor, formatFloat(v.Float, v.FloatRepr))
	case ast.BoolType:
		return e.colored(v.Type, ValueColor, strconv.FormatBool(v.Bool))
	case ast.DateTimeType:
		return e.colored(v.Type, ValueColor, v.Time.Format(time.RFC3339Nano))
	case ast.ArrayType:
		return e.array(v, depth)
	case ast.TableType:
		return e.inlineTable(v.Table, depth)
	}
	if e.err == nil {
		e.err = fmt.Errorf("%w: cannot encode %s value", ErrEncoding, v.Type)
	}
	return ""
}

// array renders single-line when no element carries comments, and the
// one-element-per-line form otherwise so comments have a line to live
// on.
func (e *encoder) array(v *ast.Value, depth int) string {
	multi := false
	for _, it := range v.Items {
		if e.es.comments && len(it.Comments) > 0 {
			multi = true
			break
		}
	}
	if !multi {
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = e.value(it.Value, depth)
		}
		return e.colored(ast.ArrayType, SepColor, "[") +
			strings.Join(parts, e.colored(ast.ArrayType, SepColor, ", ")) +
			e.colored(ast.ArrayType, SepColor, "]")
	}
	pad := strings.Repeat(" ", e.es.indent*(depth+1))
	var b strings.Builder
	b.WriteString(e.colored(ast.ArrayType, SepColor, "[") + "\n")
	for _, it := range v.Items {
		for _, text := range it.Comments.PreTexts() {
			b.WriteString(pad + e.colored(it.Value.Type, CommentColor, "#"+text) + "\n")
		}
		b.WriteString(pad + e.value(it.Value, depth+1) + e.colored(ast.ArrayType, SepColor, ","))
		b.WriteString(e.postComments(it.Comments, it.Value.Type))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", e.es.indent*depth) + e.colored(ast.ArrayType, SepColor, "]"))
	return b.String()
}

// inlineTable renders `{k = v, ...}`. Entry comments have no line of
// their own in this form and are dropped.
func (e *encoder) inlineTable(t *ast.Table, depth int) string {
	if t.Len() == 0 {
		return e.colored(ast.TableType, SepColor, "{}")
	}
	parts := make([]string, t.Len())
	for i := 0; i < t.Len(); i++ {
		key, item := t.At(i)
		parts[i] = e.colored(item.Value.Type, FieldColor, ast.NewSegment(key).String()) +
			e.colored(item.Value.Type, SepColor, " = ") +
			e.value(item.Value, depth)
	}
	return e.colored(ast.TableType, SepColor, "{") +
		strings.Join(parts, e.colored(ast.TableType, SepColor, ", ")) +
		e.colored(ast.TableType, SepColor, "}")
}

func (e *encoder) colored(t ast.Type, a ColorAttr, s string) string {
	if e.es.Color == nil {
		return s
	}
	return e.es.Color(t, a, s)
}

func formatInt(v int64, base ast.Base) string {
	var prefix string
	var b int
	switch base {
	case ast.BaseBinary:
		prefix, b = "0b", 2
	case ast.BaseOctal:
		prefix, b = "0o", 8
	case ast.BaseHex:
		prefix, b = "0x", 16
	default:
		return strconv.FormatInt(v, 10)
	}
	s := strconv.FormatInt(v, b)
	if strings.HasPrefix(s, "-") {
		return "-" + prefix + s[1:]
	}
	return prefix + s
}

func formatFloat(v float64, repr ast.FloatRepr) string {
	if repr == ast.FloatScientific {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
