package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated string")
	ErrControlChar  = errors.New("control character in string")
	ErrNumber       = errors.New("malformed number")
	ErrDateTime     = errors.New("malformed date time")
	ErrUnexpected   = errors.New("unexpected character")
)

// ScanErr is a lexical error: no token rule applies at Pos, or a token
// rule started matching and could not complete.
type ScanErr struct {
	Err error
	Pos Pos
}

func NewScanErr(e error, p *Pos) *ScanErr {
	return &ScanErr{Err: e, Pos: *p}
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("%w: %s", ErrUnexpected, what), p)
}
