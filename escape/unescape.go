package escape

import (
	"strings"
	"unicode/utf8"
)

// Unescape decodes the raw body of a double-quoted string into its
// literal character sequence. It fails at the first offending byte; it
// never substitutes a replacement character.
func Unescape(input string, mode Mode) (string, error) {
	var b strings.Builder
	b.Grow(len(input))
	i := 0
	n := len(input)
	for i < n {
		r, sz := utf8.DecodeRuneInString(input[i:])
		start := i
		i += sz
		switch {
		case r == '\t':
			b.WriteByte('\t')
		case (r == '\n' || r == '\r') && mode == MultiLine:
			b.WriteRune(r)
		case isASCIIControl(r):
			return "", decodeErr(ErrEscapeOnlyChar, Span{start, i})
		case r == '"' && mode == SingleLine:
			return "", decodeErr(ErrEscapeOnlyChar, Span{start, i})
		case r == '\\':
			if mode == MultiLine && i < n && input[i] == '\n' {
				// Line continuation: the backslash, the newline and
				// any whitespace through the next non-whitespace
				// character are elided entirely.
				for i < n && asciiWhitespace(input[i]) {
					i++
				}
				continue
			}
			c, ni, err := parseEscape(input, start, i)
			if err != nil {
				return "", err
			}
			b.WriteRune(c)
			i = ni
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func parseEscape(input string, start, i int) (rune, int, error) {
	if i >= len(input) {
		return 0, 0, decodeErr(ErrLoneBackslash, Span{start, i})
	}
	c := input[i]
	i++
	switch c {
	case 't':
		return '\t', i, nil
	case 'n':
		return '\n', i, nil
	case 'r':
		return '\r', i, nil
	case '"':
		return '"', i, nil
	case '\\':
		return '\\', i, nil
	case 'u':
		return parseUnicode(input, start, i, 4)
	case 'U':
		return parseUnicode(input, start, i, 8)
	}
	return 0, 0, decodeErr(ErrInvalidEscape, Span{start, i})
}

func parseUnicode(input string, start, i, digits int) (rune, int, error) {
	value := 0
	for k := 0; k < digits; k++ {
		if i >= len(input) {
			return 0, 0, decodeErr(ErrIncompleteUnicode, Span{start, i})
		}
		d := hexDigit(input[i])
		i++
		if d < 0 {
			return 0, 0, decodeErr(ErrInvalidUnicodeDigit, Span{start, i})
		}
		value = value*16 + d
	}
	if value > 0x10ffff {
		return 0, 0, decodeErr(ErrOutOfRange, Span{start, i})
	}
	if value >= 0xd800 && value <= 0xdfff {
		return 0, 0, decodeErr(ErrSurrogate, Span{start, i})
	}
	return rune(value), i, nil
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func asciiWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
