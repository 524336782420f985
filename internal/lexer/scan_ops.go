package lexer

import (
	"sniff/internal/token"
)

// try2 consumes the next two bytes when they match.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if ok && b0 == a && b1 == b {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return false
}

// try3 consumes the next three bytes when they match.
func (lx *Lexer) try3(a, b, c byte) bool {
	if lx.cursor.PeekAt(0) == a && lx.cursor.PeekAt(1) == b && lx.cursor.PeekAt(2) == c {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return false
}

// scanOperatorOrPunct scans operators greedily: three-byte first, then
// two-byte, then single bytes. Anything unrecognized becomes an Invalid
// token of one byte so the stream stays lossless.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return lx.emit(k, start)
	}

	switch {
	case lx.try3('=', '=', '='):
		return emit(token.EqEqEq)
	case lx.try3('!', '=', '='):
		return emit(token.BangEqEq)
	case lx.try3('<', '=', '>'):
		return emit(token.Spaceship)
	case lx.try3('.', '.', '.'):
		return emit(token.Ellipsis)
	case lx.try3('?', '?', '='):
		return emit(token.NullAssign)
	case lx.try3('?', '-', '>'):
		return emit(token.NullArrow)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('&', '&'):
		return emit(token.AmpAmp)
	case lx.try2('|', '|'):
		return emit(token.PipePipe)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('=', '>'):
		return emit(token.DoubleArrow)
	case lx.try2(':', ':'):
		return emit(token.DoubleColon)
	case lx.try2('?', '?'):
		return emit(token.QuestionQuestion)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('.', '='):
		return emit(token.ConcatAssign)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '.':
		return emit(token.Concat)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '~':
		return emit(token.Tilde)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '@':
		return emit(token.At)
	case '\\':
		return emit(token.NsSep)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	default:
		return emit(token.Invalid)
	}
}
