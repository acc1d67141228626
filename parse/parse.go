package parse

import (
	"io"

	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/token"
)

// Parse parses a complete document and assembles its root table.
func Parse(d []byte, opts ...Option) (*ast.Table, error) {
	lines, err := ParseLines(d, opts...)
	if err != nil {
		return nil, err
	}
	return lines.Table()
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...Option) (*ast.Table, error) {
	return Parse([]byte(s), opts...)
}

// ParseLines parses a document into its flat line sequence, before
// assembly into tables. Most callers want Parse; ParseLines exposes
// the intermediate form for tools that care about line layout.
func ParseLines(d []byte, opts ...Option) (ast.Lines, error) {
	p := &parser{sc: token.NewScanner(d), opts: newParseOpts(opts)}
	var res ast.Lines
	for {
		ln, err := p.line()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, *ln)
	}
}

type parser struct {
	sc   *token.Scanner
	opts *parseOpts
}

// need scans the next token, turning end of input into a syntax error
// naming what was expected.
func (p *parser) need(ctx token.Context, what string) (*token.Token, error) {
	tok, err := p.sc.Next(ctx)
	if err == io.EOF {
		return nil, syntaxErr("unexpected end of input, expected "+what, p.sc.Pos())
	}
	if err != nil {
		return nil, lexicalErr(err)
	}
	return tok, nil
}

func (p *parser) line() (*ast.Line, error) {
	tok, err := p.sc.Next(token.KeyContext)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, lexicalErr(err)
	}
	switch tok.Type {
	case token.TNewline:
		return &ast.Line{}, nil
	case token.TComment:
		c := &ast.Comment{Kind: ast.Pre, Text: commentText(tok)}
		nxt, err := p.sc.Next(token.ValueContext)
		if err == io.EOF {
			return &ast.Line{Meta: c}, nil
		}
		if err != nil {
			return nil, lexicalErr(err)
		}
		if nxt.Type != token.TNewline {
			return nil, unexpectedTokenErr(nxt, nxt.Pos)
		}
		return &ast.Line{Meta: c}, nil
	case token.TLSquare:
		return p.header()
	case token.TBareKey, token.TString:
		return p.keyValue(tok)
	}
	return nil, unexpectedTokenErr(tok, tok.Pos)
}

// header parses `[key]` or `[[key]]` after the opening bracket.
func (p *parser) header() (*ast.Line, error) {
	kind := ast.TableHeader
	tok, err := p.need(token.KeyContext, "key")
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TLSquare {
		kind = ast.ArrayOfTablesHeader
		tok, err = p.need(token.KeyContext, "key")
		if err != nil {
			return nil, err
		}
	}
	key, term, err := p.key(tok)
	if err != nil {
		return nil, err
	}
	if term.Type != token.TRSquare {
		return nil, unexpectedTokenErr(term, term.Pos)
	}
	if kind == ast.ArrayOfTablesHeader {
		cl, err := p.need(token.ValueContext, "']'")
		if err != nil {
			return nil, err
		}
		if cl.Type != token.TRSquare {
			return nil, unexpectedTokenErr(cl, cl.Pos)
		}
	}
	meta, err := p.endOfLine()
	if err != nil {
		return nil, err
	}
	data := &ast.Data{Header: &ast.Header{Kind: kind, Key: key}}
	return &ast.Line{Data: data, Meta: meta}, nil
}

func (p *parser) keyValue(first *token.Token) (*ast.Line, error) {
	key, term, err := p.key(first)
	if err != nil {
		return nil, err
	}
	if term.Type != token.TEqual {
		return nil, unexpectedTokenErr(term, term.Pos)
	}
	vtok, err := p.need(token.ValueContext, "value")
	if err != nil {
		return nil, err
	}
	v, err := p.value(vtok)
	if err != nil {
		return nil, err
	}
	meta, err := p.endOfLine()
	if err != nil {
		return nil, err
	}
	data := &ast.Data{KeyValue: &ast.KeyValue{Key: key, Value: v}}
	return &ast.Line{Data: data, Meta: meta}, nil
}

// endOfLine consumes an optional trailing comment and the line
// terminator. End of input terminates a line too.
func (p *parser) endOfLine() (*ast.Comment, error) {
	var meta *ast.Comment
	tok, err := p.sc.Next(token.ValueContext)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, lexicalErr(err)
	}
	if tok.Type == token.TComment {
		meta = &ast.Comment{Kind: ast.Post, Text: commentText(tok)}
		tok, err = p.sc.Next(token.ValueContext)
		if err == io.EOF {
			return meta, nil
		}
		if err != nil {
			return nil, lexicalErr(err)
		}
	}
	if tok.Type != token.TNewline {
		return nil, unexpectedTokenErr(tok, tok.Pos)
	}
	return meta, nil
}

// key parses dot-separated segments starting at first, returning the
// key and the token that terminated it.
func (p *parser) key(first *token.Token) (ast.Key, *token.Token, error) {
	var key ast.Key
	tok := first
	for {
		seg, err := segment(tok)
		if err != nil {
			return nil, nil, err
		}
		key = append(key, seg)
		term, err := p.need(token.ValueContext, "'.'")
		if err != nil {
			return nil, nil, err
		}
		if term.Type != token.TDot {
			return key, term, nil
		}
		tok, err = p.need(token.KeyContext, "key")
		if err != nil {
			return nil, nil, err
		}
	}
}

func segment(tok *token.Token) (ast.Segment, error) {
	switch tok.Type {
	case token.TBareKey:
		return ast.Segment{Text: string(tok.Bytes)}, nil
	case token.TString:
		if tok.Multiline() {
			return ast.Segment{}, syntaxErr("multi-line string in key", tok.Pos)
		}
		q, err := decodeString(tok)
		if err != nil {
			return ast.Segment{}, err
		}
		return ast.Segment{Text: q.Value, Quoted: true, Style: q.Style}, nil
	}
	return ast.Segment{}, unexpectedTokenErr(tok, tok.Pos)
}

func (p *parser) value(tok *token.Token) (*ast.Value, error) {
	var v *ast.Value
	var err error
	switch tok.Type {
	case token.TString:
		var q ast.Quoted
		q, err = decodeString(tok)
		if err == nil {
			v = ast.FromQuoted(q)
		}
	case token.TInteger:
		v, err = decodeInteger(tok)
	case token.TFloat:
		v, err = decodeFloat(tok)
	case token.TTrue:
		v = ast.FromBool(true)
	case token.TFalse:
		v = ast.FromBool(false)
	case token.TDateTime:
		v, err = decodeDateTime(tok)
	case token.TLSquare:
		v, err = p.array()
	case token.TLCurl:
		v, err = p.inlineTable()
	default:
		err = unexpectedTokenErr(tok, tok.Pos)
	}
	if err != nil {
		return nil, err
	}
	if p.opts.positions != nil {
		p.opts.positions[v] = tok.Pos
	}
	return v, nil
}

// array parses elements after the opening '['. Comments met between
// elements attach forward to the next element here; associateComments
// then rewrites the attachment into reading order.
func (p *parser) array() (*ast.Value, error) {
	var items []*ast.Item
	var run ast.Comments
	sawNL := false
	needComma := false
	for {
		tok, err := p.need(token.ValueContext, "value or ']'")
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.TNewline:
			sawNL = true
		case token.TComment:
			kind := ast.Pre
			if !sawNL {
				kind = ast.Post
			}
			run = append(run, ast.Comment{Kind: kind, Text: commentText(tok)})
		case token.TRSquare:
			associateComments(items, run)
			return ast.FromItems(items), nil
		case token.TComma:
			if !needComma {
				return nil, syntaxErr("unexpected ','", tok.Pos)
			}
			needComma = false
		default:
			if needComma {
				return nil, syntaxErr("expected ',' or ']'", tok.Pos)
			}
			v, err := p.value(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, ast.NewItem(run, v))
			run = nil
			sawNL = false
			needComma = true
		}
	}
}

// inlineTable parses entries after the opening '{'. Inline tables stay
// on one line; a newline anywhere but inside a nested array is a
// syntax error.
func (p *parser) inlineTable() (*ast.Value, error) {
	res := ast.NewTable()
	tok, err := p.need(token.KeyContext, "key or '}'")
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TRCurl {
		return ast.FromTable(res), nil
	}
	for {
		if tok.Type == token.TNewline {
			return nil, syntaxErr("newline in inline table", tok.Pos)
		}
		key, term, err := p.key(tok)
		if err != nil {
			return nil, err
		}
		if term.Type != token.TEqual {
			return nil, unexpectedTokenErr(term, term.Pos)
		}
		vtok, err := p.need(token.ValueContext, "value")
		if err != nil {
			return nil, err
		}
		if vtok.Type == token.TNewline {
			return nil, syntaxErr("newline in inline table", vtok.Pos)
		}
		v, err := p.value(vtok)
		if err != nil {
			return nil, err
		}
		wrapped := ast.Wrap(key, ast.ItemOf(v))
		if err := res.Merge(wrapped.Table); err != nil {
			return nil, err
		}
		sep, err := p.need(token.ValueContext, "',' or '}'")
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case token.TRCurl:
			return ast.FromTable(res), nil
		case token.TComma:
		case token.TNewline:
			return nil, syntaxErr("newline in inline table", sep.Pos)
		default:
			return nil, unexpectedTokenErr(sep, sep.Pos)
		}
		tok, err = p.need(token.KeyContext, "key")
		if err != nil {
			return nil, err
		}
	}
}

func commentText(tok *token.Token) string {
	return string(tok.Bytes[1:])
}
