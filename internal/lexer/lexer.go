package lexer

import (
	"sniff/internal/diag"
	"sniff/internal/source"
	"sniff/internal/token"
)

// Lexer converts one file into the complete lossless token sequence.
// Whitespace and comments are real tokens, not trivia: every input byte
// belongs to exactly one token.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	inPHP   bool
	pending []token.Token // queued doc-block sub-tokens
	fatal   *diag.MalformedSourceError
}

// New creates a lexer positioned at the start of the file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Err returns the fatal malformed-source error, if one was hit.
func (lx *Lexer) Err() *diag.MalformedSourceError {
	return lx.fatal
}

// Next returns the next token. After EOF or a fatal error it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.pending) > 0 {
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]
		return tok
	}
	if lx.fatal != nil || lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.At(lx.file.ID, lx.cursor.Off),
		}
	}

	if !lx.inPHP {
		return lx.scanOutsideTags()
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == ' ' || ch == '\t' || ch == '\r':
		return lx.scanWhitespace()

	case ch == '\n':
		return lx.scanNewline()

	case ch == '$':
		return lx.scanVariable()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()

	case ch == '\'' || ch == '"':
		return lx.scanString()

	case ch == '#':
		return lx.scanLineComment()

	case ch == '/':
		switch lx.cursor.PeekAt(1) {
		case '/':
			return lx.scanLineComment()
		case '*':
			return lx.scanBlockOrDocComment()
		default:
			return lx.scanOperatorOrPunct()
		}

	case ch == '?' && lx.cursor.HasPrefix("?>"):
		return lx.scanCloseTag()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Tokenize runs the lexer to completion, returning every token including
// the trailing EOF. On a malformed source the token slice is nil.
func Tokenize(file *source.File) ([]token.Token, *diag.MalformedSourceError) {
	lx := New(file)
	tokens := make([]token.Token, 0, len(file.Content)/4+8)
	for {
		tok := lx.Next()
		if lx.fatal != nil {
			return nil, lx.fatal
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// fail records the first fatal error; subsequent tokens degrade to EOF.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) token.Token {
	if lx.fatal == nil {
		lx.fatal = diag.Malformed(code, sp, msg)
	}
	return token.Token{Kind: token.Invalid, Span: sp}
}

func (lx *Lexer) textFor(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: lx.textFor(sp),
	}
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanNewline emits one Newline token per '\n' so rules can count blank
// lines without splitting whitespace text.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(token.Newline, start)
}
