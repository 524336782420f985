package lexer

import (
	"sniff/internal/diag"
	"sniff/internal/token"
)

// scanLineComment scans '//' or '#' comments up to (not including) the
// newline, which stays a separate token.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.emit(token.LineComment, start)
}

// scanBlockOrDocComment dispatches between '/* ... */' block comments and
// '/** ... */' doc-blocks. '/**/' is an empty block comment.
func (lx *Lexer) scanBlockOrDocComment() token.Token {
	if lx.cursor.HasPrefix("/**") && lx.cursor.PeekAt(3) != '/' {
		return lx.scanDocBlock()
	}
	return lx.scanBlockComment()
}

func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.BlockComment, start)
		}
		lx.cursor.Bump()
	}
	return lx.fail(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated block comment")
}

// scanDocBlock tokenizes a '/** ... */' doc-block into sub-tokens so rules
// can address individual tags without re-parsing comment text:
//
//	DocOpen, then interleaved DocWhitespace / DocStar / DocTag / DocString,
//	closed by DocClose.
//
// The first sub-token is returned; the rest are queued on the lexer. An
// unterminated doc-block is fatal for the file.
func (lx *Lexer) scanDocBlock() token.Token {
	openStart := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	lx.cursor.Bump() // '*'
	open := lx.emit(token.DocOpen, openStart)

	// lineStart: a '*' here is a structural line-leading star.
	// contentStart: an '@' here begins a tag rather than free text.
	lineStart := false
	contentStart := true

	for {
		if lx.cursor.EOF() {
			sp := open.Span.Cover(lx.cursor.SpanFrom(openStart))
			lx.pending = nil
			return lx.fail(diag.LexUnterminatedDocBlock, sp, "unterminated doc-block")
		}

		if lx.cursor.HasPrefix("*/") {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.pending = append(lx.pending, lx.emit(token.DocClose, start))
			return open
		}

		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			start := lx.cursor.Mark()
			sawNewline := false
			for {
				b := lx.cursor.Peek()
				if b != ' ' && b != '\t' && b != '\r' && b != '\n' {
					break
				}
				if b == '\n' {
					sawNewline = true
				}
				lx.cursor.Bump()
			}
			lx.pending = append(lx.pending, lx.emit(token.DocWhitespace, start))
			if sawNewline {
				lineStart = true
				contentStart = true
			}

		case b == '*' && lineStart:
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.pending = append(lx.pending, lx.emit(token.DocStar, start))
			lineStart = false
			contentStart = true

		case b == '@' && contentStart && isIdentStartByte(lx.cursor.PeekAt(1)):
			start := lx.cursor.Mark()
			lx.cursor.Bump() // '@'
			for {
				b := lx.cursor.Peek()
				if !isIdentContinueByte(b) && b != '-' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pending = append(lx.pending, lx.emit(token.DocTag, start))
			lineStart = false
			contentStart = false

		default:
			start := lx.cursor.Mark()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && !lx.cursor.HasPrefix("*/") {
				lx.cursor.Bump()
			}
			lx.pending = append(lx.pending, lx.emit(token.DocString, start))
			lineStart = false
			contentStart = false
		}
	}
}
