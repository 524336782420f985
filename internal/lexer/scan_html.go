package lexer

import (
	"sniff/internal/token"
)

const openTagText = "<?php"

// scanOutsideTags handles text before an open tag. It emits either the
// open tag itself or one InlineHTML token covering everything up to the
// next open tag (or EOF).
func (lx *Lexer) scanOutsideTags() token.Token {
	if lx.cursor.HasPrefix(openTagText) {
		start := lx.cursor.Mark()
		for i := 0; i < len(openTagText); i++ {
			lx.cursor.Bump()
		}
		lx.inPHP = true
		return lx.emit(token.OpenTag, start)
	}

	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && !lx.cursor.HasPrefix(openTagText) {
		lx.cursor.Bump()
	}
	return lx.emit(token.InlineHTML, start)
}

func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '?'
	lx.cursor.Bump() // '>'
	lx.inPHP = false
	return lx.emit(token.CloseTag, start)
}
