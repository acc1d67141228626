// Package escape decodes and encodes backslash escape sequences in
// double-quoted string bodies. Single-quoted (literal) strings never
// carry escapes and are not handled here.
//
// Must be escaped:
//   - single-line: quotation mark, backslash, and the control
//     characters other than tab.
//   - multi-line: backslash and the control characters other than tab,
//     line feed, and carriage return.
package escape

// Mode selects between the single-line and multi-line escape rules.
type Mode int

const (
	SingleLine Mode = iota
	MultiLine
)

// Span designates the byte range of an offending escape sequence.
type Span struct {
	Start int
	End   int
}

// Flags classifies a decoded string for quote-style synthesis: whether
// it can stand as a bare key segment, and which quoted forms could
// represent it verbatim.
type Flags struct {
	IsQuoted      bool // contains a character outside [A-Za-z0-9_-]
	HasNewline    bool // contains LF or CR
	HasControl    bool // contains an ASCII control other than HT, LF, CR
	HasApostrophe bool
}

func ParseFlags(input string) Flags {
	var f Flags
	// an empty segment can only be written quoted
	f.IsQuoted = input == ""
	for _, c := range input {
		if !f.IsQuoted {
			f.IsQuoted = !bareChar(c)
		}
		if !f.HasNewline {
			f.HasNewline = c == '\n' || c == '\r'
		}
		if !f.HasControl {
			f.HasControl = isASCIIControl(c) && c != '\t' && c != '\n' && c != '\r'
		}
		if !f.HasApostrophe {
			f.HasApostrophe = c == '\''
		}
		if f.IsQuoted && f.HasNewline && f.HasControl && f.HasApostrophe {
			break
		}
	}
	return f
}

func bareChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

func isASCIIControl(c rune) bool {
	return c < 0x20 || c == 0x7f
}
