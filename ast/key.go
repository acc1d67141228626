package ast

import (
	"strings"

	"github.com/signadot/toml-format/escape"
)

// Segment is one dot-separated key component. Text is always the
// decoded content; Style records how it was quoted in source, and is
// round-trip metadata only. Equality and lookup use Text.
type Segment struct {
	Text   string
	Quoted bool
	Style  QuoteStyle
}

// NewSegment synthesizes a segment for decoded content, re-deriving
// quoting from what the content requires. Key segments only ever use
// the single-line quoting forms.
func NewSegment(text string) Segment {
	f := escape.ParseFlags(text)
	if !f.IsQuoted {
		return Segment{Text: text}
	}
	if f.HasNewline || f.HasControl || f.HasApostrophe {
		return Segment{Text: text, Quoted: true, Style: DoubleQuoted}
	}
	return Segment{Text: text, Quoted: true, Style: SingleQuoted}
}

func (s Segment) String() string {
	if !s.Quoted {
		return s.Text
	}
	return Quoted{Style: s.Style, Value: s.Text}.Render()
}

// Key is an ordered, never-empty sequence of segments.
type Key []Segment

// KeyOf builds a key from decoded segment texts.
func KeyOf(texts ...string) Key {
	k := make(Key, len(texts))
	for i, t := range texts {
		k[i] = NewSegment(t)
	}
	return k
}

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, s := range k {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Texts returns the decoded segment texts.
func (k Key) Texts() []string {
	parts := make([]string, len(k))
	for i, s := range k {
		parts[i] = s.Text
	}
	return parts
}
