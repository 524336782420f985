package lexer

import (
	"sniff/internal/token"
)

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanIdentOrKeyword scans an identifier and checks it against the keyword
// table. Bytes >= 0x80 are accepted as identifier characters, matching the
// target language's permissive name grammar.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}

	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanVariable scans '$name'. A bare '$' is its own token.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	b := lx.cursor.Peek()
	if !isIdentStartByte(b) && b < utf8RuneSelf {
		return lx.emit(token.Dollar, start)
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Variable, start)
}
