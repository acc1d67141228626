package escape

import (
	"fmt"
	"strings"
)

// Escape encodes a literal string into the body of a double-quoted
// string, the inverse of Unescape.
func Escape(input string, mode Mode) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, c := range input {
		switch {
		case c == '\t':
			b.WriteByte('\t')
		case c == '\n':
			if mode == SingleLine {
				b.WriteString(`\n`)
			} else {
				b.WriteByte('\n')
			}
		case c == '\r':
			if mode == SingleLine {
				b.WriteString(`\r`)
			} else {
				b.WriteByte('\r')
			}
		case isASCIIControl(c):
			fmt.Fprintf(&b, `\u%04X`, c)
		case c == '"' && mode == SingleLine:
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
