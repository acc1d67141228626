package token

import (
	"io"
	"unicode/utf8"
)

// Scanner produces tokens from an in-memory document, one at a time.
// The caller selects the lexical context per call; nothing else is
// shared between calls, the scanner just tracks its offset and the
// newline table for positions.
type Scanner struct {
	d      []byte
	posDoc *PosDoc
	i      int
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d, posDoc: NewPosDoc(d)}
}

// PosDoc exposes the scanner's position table so errors produced after
// scanning can still be mapped to line/column.
func (s *Scanner) PosDoc() *PosDoc {
	return s.posDoc
}

func (s *Scanner) Offset() int {
	return s.i
}

func (s *Scanner) Pos() *Pos {
	return s.posDoc.Pos(s.i)
}

// Next scans the next token under the given context, skipping
// horizontal whitespace. It returns io.EOF at end of input.
func (s *Scanner) Next(ctx Context) (*Token, error) {
	d, n := s.d, len(s.d)
	for s.i < n && (d[s.i] == ' ' || d[s.i] == '\t') {
		s.i++
	}
	if s.i >= n {
		return nil, io.EOF
	}
	start := s.i
	pos := s.posDoc.Pos(start)
	c := d[s.i]

	if c == '\r' && s.i+1 < n && d[s.i+1] == '\n' {
		s.i++
		c = '\n'
	}
	if c == '\n' {
		s.posDoc.nl(s.i)
		s.i++
		return &Token{Type: TNewline, Pos: pos, Bytes: d[s.i-1 : s.i]}, nil
	}

	if ctx == KeyContext && isBareKeyChar(c) {
		j := s.i
		for j < n && isBareKeyChar(d[j]) {
			j++
		}
		tok := &Token{Type: TBareKey, Pos: pos, Bytes: d[s.i:j]}
		s.i = j
		return tok, nil
	}

	switch c {
	case '{':
		return s.punct(TLCurl, pos), nil
	case '}':
		return s.punct(TRCurl, pos), nil
	case '[':
		return s.punct(TLSquare, pos), nil
	case ']':
		return s.punct(TRSquare, pos), nil
	case '=':
		return s.punct(TEqual, pos), nil
	case '.':
		return s.punct(TDot, pos), nil
	case ',':
		return s.punct(TComma, pos), nil
	case '#':
		j := s.i
		for j < n && d[j] != '\n' {
			if d[j] == '\r' && j+1 < n && d[j+1] == '\n' {
				break
			}
			j++
		}
		tok := &Token{Type: TComment, Pos: pos, Bytes: d[s.i:j]}
		s.i = j
		return tok, nil
	case '\'', '"':
		j, err := s.quoted(s.i)
		if err != nil {
			return nil, err
		}
		tok := &Token{Type: TString, Pos: pos, Bytes: d[s.i:j]}
		s.i = j
		return tok, nil
	}

	if c == '+' || c == '-' || asciiDigit(c) {
		return s.number(pos)
	}

	if isAlpha(c) {
		j := s.i
		for j < n && isAlpha(d[j]) {
			j++
		}
		word := string(d[s.i:j])
		switch word {
		case "true":
			s.i = j
			return &Token{Type: TTrue, Pos: pos, Bytes: d[start:j]}, nil
		case "false":
			s.i = j
			return &Token{Type: TFalse, Pos: pos, Bytes: d[start:j]}, nil
		}
		return nil, UnexpectedErr(word, pos)
	}

	r, _ := utf8.DecodeRune(d[s.i:])
	if r == utf8.RuneError {
		return nil, NewScanErr(ErrBadUTF8, pos)
	}
	return nil, UnexpectedErr(string(r), pos)
}

func (s *Scanner) punct(t Type, pos *Pos) *Token {
	tok := &Token{Type: t, Pos: pos, Bytes: s.d[s.i : s.i+1]}
	s.i++
	return tok
}

func isBareKeyChar(c byte) bool {
	return isAlpha(c) || asciiDigit(c) || c == '-' || c == '_'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
