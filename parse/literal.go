package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/escape"
	"github.com/signadot/toml-format/token"
)

func decodeString(tok *token.Token) (ast.Quoted, error) {
	body := string(tok.Body())
	var style ast.QuoteStyle
	switch {
	case tok.Multiline() && tok.DoubleQuoted():
		style = ast.DoubleQuotedMulti
	case tok.Multiline():
		style = ast.SingleQuotedMulti
	case tok.DoubleQuoted():
		style = ast.DoubleQuoted
	default:
		style = ast.SingleQuoted
	}
	if tok.Multiline() {
		// a newline right after the opening delimiter is trimmed
		switch {
		case strings.HasPrefix(body, "\r\n"):
			body = body[2:]
		case strings.HasPrefix(body, "\n"):
			body = body[1:]
		}
	}
	if tok.DoubleQuoted() {
		mode := escape.SingleLine
		if tok.Multiline() {
			mode = escape.MultiLine
		}
		decoded, err := escape.Unescape(body, mode)
		if err != nil {
			return ast.Quoted{}, escapeErr(err, tok.Pos)
		}
		body = decoded
	}
	return ast.Quoted{Style: style, Value: body}, nil
}

func decodeInteger(tok *token.Token) (*ast.Value, error) {
	lit := string(tok.Bytes)
	sign := ""
	if strings.HasPrefix(lit, "+") || strings.HasPrefix(lit, "-") {
		sign, lit = lit[:1], lit[1:]
	}
	base, repr, what := 10, ast.BaseDecimal, "decimal integer"
	switch {
	case strings.HasPrefix(lit, "0b"):
		base, repr, what = 2, ast.BaseBinary, "binary integer"
		lit = lit[2:]
	case strings.HasPrefix(lit, "0o"):
		base, repr, what = 8, ast.BaseOctal, "octal integer"
		lit = lit[2:]
	case strings.HasPrefix(lit, "0x"):
		base, repr, what = 16, ast.BaseHex, "hex integer"
		lit = lit[2:]
	}
	if sign != "" && base != 10 {
		return nil, semanticErr(what, tok.Pos)
	}
	if badUnderscores(lit) {
		return nil, semanticErr(what, tok.Pos)
	}
	v, err := strconv.ParseInt(sign+strings.ReplaceAll(lit, "_", ""), base, 64)
	if err != nil {
		return nil, semanticErr(what, tok.Pos)
	}
	return ast.FromInt(v, repr), nil
}

func decodeFloat(tok *token.Token) (*ast.Value, error) {
	lit := string(tok.Bytes)
	if badUnderscores(strings.TrimLeft(lit, "+-")) {
		return nil, semanticErr("float", tok.Pos)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
	if err != nil {
		return nil, semanticErr("float", tok.Pos)
	}
	repr := ast.FloatDecimal
	if tok.Scientific() {
		repr = ast.FloatScientific
	}
	return ast.FromFloat(v, repr), nil
}

func decodeDateTime(tok *token.Token) (*ast.Value, error) {
	t, err := time.Parse(time.RFC3339, string(tok.Bytes))
	if err != nil {
		return nil, semanticErr("date time", tok.Pos)
	}
	return ast.FromTime(t), nil
}

// badUnderscores rejects underscore placements that cannot separate
// digit groups.
func badUnderscores(lit string) bool {
	if lit == "" ||
		strings.HasPrefix(lit, "_") ||
		strings.HasSuffix(lit, "_") ||
		strings.Contains(lit, "__") ||
		strings.Contains(lit, "_.") ||
		strings.Contains(lit, "._") {
		return true
	}
	for _, pair := range []string{"_e", "e_", "_E", "E_", "+_", "-_"} {
		if strings.Contains(lit, pair) {
			return true
		}
	}
	return false
}
