package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/toml-format/token"
)

var (
	// ErrLexical wraps scanner failures: no token rule applies.
	ErrLexical = errors.New("lexical error")
	// ErrSyntax marks a token stream that matches no production.
	ErrSyntax = errors.New("syntax error")
	// ErrSemantic marks a literal that lexed but whose decoded value
	// is invalid for its declared kind.
	ErrSemantic = errors.New("semantic error")
)

func lexicalErr(err error) error {
	return fmt.Errorf("%w: %w", ErrLexical, err)
}

func syntaxErr(what string, pos *token.Pos) error {
	return fmt.Errorf("%w: %s %s", ErrSyntax, what, pos)
}

func unexpectedTokenErr(tok *token.Token, pos *token.Pos) error {
	return syntaxErr(fmt.Sprintf("unexpected %q", string(tok.Bytes)), pos)
}

// semanticErr names which literal kind failed; the tag is part of the
// user-facing message.
func semanticErr(what string, pos *token.Pos) error {
	return fmt.Errorf("%w: parse %s at %s", ErrSemantic, what, pos)
}

func escapeErr(err error, pos *token.Pos) error {
	return fmt.Errorf("%w: decode string: %w at %s", ErrSemantic, err, pos)
}
