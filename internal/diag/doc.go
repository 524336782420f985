// Package diag defines the violation model shared by the lexer, the rule
// engine and the fixer: severities, stable codes, the Violation record,
// the Bag accumulator, and reporter plumbing.
package diag
