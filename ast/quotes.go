package ast

import (
	"github.com/signadot/toml-format/escape"
)

// QuoteStyle identifies which of the four textual quoting forms
// produced a string, independent of its decoded content.
type QuoteStyle int

const (
	SingleQuoted      QuoteStyle = iota // 'x'
	DoubleQuoted                        // "x"
	SingleQuotedMulti                   // '''x'''
	DoubleQuotedMulti                   // """x"""
)

func (q QuoteStyle) Multi() bool {
	return q == SingleQuotedMulti || q == DoubleQuotedMulti
}

func (q QuoteStyle) Double() bool {
	return q == DoubleQuoted || q == DoubleQuotedMulti
}

func (q QuoteStyle) String() string {
	switch q {
	case SingleQuoted:
		return "single-quoted"
	case DoubleQuoted:
		return "double-quoted"
	case SingleQuotedMulti:
		return "multi-line single-quoted"
	case DoubleQuotedMulti:
		return "multi-line double-quoted"
	}
	return "invalid"
}

func (q QuoteStyle) escapeMode() escape.Mode {
	if q.Multi() {
		return escape.MultiLine
	}
	return escape.SingleLine
}

// StyleFor synthesizes a quote style able to represent content that
// did not come from source text. Literal single quotes win unless the
// content needs escaping; embedded newlines force a multi-line form.
func StyleFor(content string) QuoteStyle {
	f := escape.ParseFlags(content)
	switch {
	case (f.HasControl || f.HasApostrophe) && f.HasNewline:
		return DoubleQuotedMulti
	case f.HasControl || f.HasApostrophe:
		return DoubleQuoted
	case f.HasNewline:
		return SingleQuotedMulti
	}
	return SingleQuoted
}

// Quoted is a decoded string together with its quoting provenance.
type Quoted struct {
	Style QuoteStyle
	Value string
}

func NewQuoted(content string) Quoted {
	return Quoted{Style: StyleFor(content), Value: content}
}

// Render reproduces source text for the string, quoting and escaping
// per its style.
func (q Quoted) Render() string {
	body := q.Value
	if q.Style.Double() {
		body = escape.Escape(q.Value, q.Style.escapeMode())
	}
	switch q.Style {
	case SingleQuoted:
		return "'" + body + "'"
	case DoubleQuoted:
		return `"` + body + `"`
	case SingleQuotedMulti:
		return "'''" + body + "'''"
	}
	return `"""` + body + `"""`
}
