package token

import (
	"bytes"
	"fmt"
)

type Type int

const (
	TNewline Type = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TEqual
	TDot
	TComma
	TString
	TInteger
	TFloat
	TTrue
	TFalse
	TDateTime
	TComment
	TBareKey
)

func (t Type) String() string {
	return map[Type]string{
		TNewline:  "TNewline",
		TLCurl:    "TLCurl",
		TRCurl:    "TRCurl",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
		TEqual:    "TEqual",
		TDot:      "TDot",
		TComma:    "TComma",
		TString:   "TString",
		TInteger:  "TInteger",
		TFloat:    "TFloat",
		TTrue:     "TTrue",
		TFalse:    "TFalse",
		TDateTime: "TDateTime",
		TComment:  "TComment",
		TBareKey:  "TBareKey",
	}[t]
}

// Context selects which token set the scanner applies. The parser passes
// the context per call; it is a pure function of the parser position.
type Context int

const (
	// ValueContext is the default token set: punctuation, strings,
	// numbers, booleans, timestamps, comments.
	ValueContext Context = iota
	// KeyContext additionally recognizes bare key segments. It applies
	// wherever a key segment may start.
	KeyContext
)

// Token is a lexed token. Bytes is a slice of the source document; for
// strings it includes the quote delimiters, for numbers the sign,
// underscores and base prefix, for comments the leading '#'.
type Token struct {
	Type  Type
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Multiline reports whether a TString token used a triple-quote form.
func (t *Token) Multiline() bool {
	return len(t.Bytes) >= 6 && t.Bytes[0] == t.Bytes[1] && t.Bytes[1] == t.Bytes[2]
}

// DoubleQuoted reports whether a TString token used double quotes.
func (t *Token) DoubleQuoted() bool {
	return len(t.Bytes) > 0 && t.Bytes[0] == '"'
}

// Body returns the string body of a TString token with the 1- or
// 3-character quote delimiters stripped, undecoded.
func (t *Token) Body() []byte {
	if t.Multiline() {
		return t.Bytes[3 : len(t.Bytes)-3]
	}
	return t.Bytes[1 : len(t.Bytes)-1]
}

// IntegerBase returns the numeric base of a TInteger token as declared
// by its literal prefix.
func (t *Token) IntegerBase() int {
	d := t.Bytes
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	if len(d) < 2 || d[0] != '0' {
		return 10
	}
	switch d[1] {
	case 'b':
		return 2
	case 'o':
		return 8
	case 'x':
		return 16
	}
	return 10
}

// Scientific reports whether a TFloat token carries an exponent.
func (t *Token) Scientific() bool {
	return bytes.ContainsAny(t.Bytes, "eE")
}
