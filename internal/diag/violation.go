package diag

import (
	"sniff/internal/source"
)

// Note attaches secondary context to a violation.
type Note struct {
	Span source.Span
	Msg  string
}

// Violation is a single reported finding. Line and Col are resolved from
// Primary when the violation enters a Bag so downstream consumers never
// need the token stream that produced it.
type Violation struct {
	Severity Severity
	Code     Code
	Rule     string // registered rule name; empty for lexer/engine diagnostics
	Message  string
	Primary  source.Span
	Line     uint32
	Col      uint32
	// Fixed records that the fixer applied a changeset for this violation
	// during the pass that produced it.
	Fixed bool
	Notes []Note
}

// New constructs a violation without position resolution.
func New(sev Severity, code Code, primary source.Span, msg string) Violation {
	return Violation{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError violations.
func NewError(code Code, primary source.Span, msg string) Violation {
	return New(SevError, code, primary, msg)
}

// NewWarning is a shortcut for fixable SevWarning violations.
func NewWarning(code Code, primary source.Span, msg string) Violation {
	return New(SevWarning, code, primary, msg)
}

// WithNote returns a copy with an extra note attached.
func (v Violation) WithNote(sp source.Span, msg string) Violation {
	v.Notes = append(v.Notes, Note{Span: sp, Msg: msg})
	return v
}

// WithRule returns a copy tagged with the reporting rule's name.
func (v Violation) WithRule(name string) Violation {
	v.Rule = name
	return v
}
