package diag

import (
	"fmt"

	"sniff/internal/source"
)

// MalformedSourceError is the fatal failure for a single file: an
// unterminated or mismatched token structure. It aborts analysis of that
// file and is never mixed into the violation list.
type MalformedSourceError struct {
	Code Code
	Span source.Span
	Msg  string
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}

// Malformed constructs a MalformedSourceError.
func Malformed(code Code, span source.Span, msg string) *MalformedSourceError {
	return &MalformedSourceError{Code: code, Span: span, Msg: msg}
}
