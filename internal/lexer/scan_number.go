package lexer

import (
	"sniff/internal/diag"
	"sniff/internal/token"
)

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanNumber scans integer and float literals: decimal, 0x hex, 0b binary,
// 0o/leading-zero octal, floats with optional exponent. Underscore digit
// separators are consumed as part of the literal text.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		b1 := lx.cursor.PeekAt(1)
		if b1 == 'x' || b1 == 'X' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n := 0
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
				n++
			}
			if n == 0 {
				return lx.fail(diag.LexBadNumber, lx.cursor.SpanFrom(start), "hex literal without digits")
			}
			return lx.emit(token.IntLit, start)
		}
		if b1 == 'b' || b1 == 'B' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n := 0
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
				n++
			}
			if n == 0 {
				return lx.fail(diag.LexBadNumber, lx.cursor.SpanFrom(start), "binary literal without digits")
			}
			return lx.emit(token.IntLit, start)
		}
	}

	isFloat := false
	lx.eatDigits()

	// Fraction: '.' must be followed by a digit, otherwise it is the
	// concatenation operator.
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		isFloat = true
		lx.cursor.Bump()
		lx.eatDigits()
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		nextNext := lx.cursor.PeekAt(2)
		if isDec(next) || ((next == '+' || next == '-') && isDec(nextNext)) {
			isFloat = true
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			lx.eatDigits()
		}
	}

	if isFloat {
		return lx.emit(token.FloatLit, start)
	}
	return lx.emit(token.IntLit, start)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || (lx.cursor.Peek() == '_' && isDec(lx.cursor.PeekAt(1))) {
		lx.cursor.Bump()
	}
}
