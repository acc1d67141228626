package escape

import (
	"errors"
	"fmt"
)

var (
	ErrEscapeOnlyChar      = errors.New("escape only char")
	ErrIncompleteUnicode   = errors.New("incomplete unicode escape")
	ErrInvalidUnicodeDigit = errors.New("invalid char in unicode escape")
	ErrInvalidEscape       = errors.New("invalid escape")
	ErrLoneBackslash       = errors.New("lone backslash")
	ErrSurrogate           = errors.New("surrogate unicode escape")
	ErrOutOfRange          = errors.New("out of range unicode escape")
)

// DecodeErr pairs an escape error kind with the span of the offending
// sequence inside the string body.
type DecodeErr struct {
	Err  error
	Span Span
}

func (e *DecodeErr) Unwrap() error {
	return e.Err
}

func (e *DecodeErr) Error() string {
	return fmt.Sprintf("%s at %d..%d", e.Err.Error(), e.Span.Start, e.Span.End)
}

func decodeErr(err error, span Span) error {
	return &DecodeErr{Err: err, Span: span}
}
