package lexer

import (
	"sniff/internal/diag"
	"sniff/internal/token"
)

// scanString scans single- or double-quoted string literals. Both may span
// multiple lines. Escapes are kept verbatim in Text; only the closing quote
// matters here. An unterminated literal is fatal for the file.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}

	return lx.fail(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
}
