// Package stream provides the indexed, randomly-addressable view over one
// file's token sequence. A stream is immutable: all mutation goes through
// the fixer, which re-lexes the rewritten text into a fresh stream with
// fresh indices.
package stream

import (
	"strings"

	"sniff/internal/diag"
	"sniff/internal/lexer"
	"sniff/internal/source"
	"sniff/internal/token"
)

// Stream owns the tokens of one file for one pass. Rules hold indices into
// it, never token references; indices die with the pass.
type Stream struct {
	fs     *source.FileSet
	file   *source.File
	tokens []token.Token
}

// Build tokenizes the file and links scope information: matching boundary
// back-references, enclosing-group parents, and block owners. Mismatched
// or unterminated structures abort with a MalformedSourceError.
func Build(fs *source.FileSet, id source.FileID) (*Stream, *diag.MalformedSourceError) {
	file := fs.Get(id)
	tokens, lexErr := lexer.Tokenize(file)
	if lexErr != nil {
		return nil, lexErr
	}

	for i := range tokens {
		start, _ := fs.Resolve(tokens[i].Span)
		tokens[i].Line = start.Line
		tokens[i].Col = start.Col
		tokens[i].Opener = token.NoIndex
		tokens[i].Closer = token.NoIndex
		tokens[i].Parent = token.NoIndex
		tokens[i].Owner = token.NoIndex
	}

	if err := linkScopes(tokens); err != nil {
		return nil, err
	}

	return &Stream{fs: fs, file: file, tokens: tokens}, nil
}

// linkScopes runs the stack-based boundary matcher.
func linkScopes(tokens []token.Token) *diag.MalformedSourceError {
	var stack []int
	for i := range tokens {
		if len(stack) > 0 {
			tokens[i].Parent = stack[len(stack)-1]
		}
		switch {
		case tokens[i].IsOpener():
			// The opener's own Parent is the enclosing group, which is
			// already set above (the opener is not inside itself).
			stack = append(stack, i)
		case tokens[i].IsCloser():
			if len(stack) == 0 {
				return diag.Malformed(diag.StructUnmatchedCloser, tokens[i].Span,
					"closing '"+tokens[i].Text+"' without matching opener")
			}
			openIdx := stack[len(stack)-1]
			want, _ := token.MatchingCloser(tokens[openIdx].Kind)
			if tokens[i].Kind != want {
				return diag.Malformed(diag.StructUnmatchedCloser, tokens[i].Span,
					"closing '"+tokens[i].Text+"' does not match '"+tokens[openIdx].Text+"'")
			}
			stack = stack[:len(stack)-1]
			tokens[openIdx].Closer = i
			tokens[i].Opener = openIdx
			// The closer belongs to the scope outside the group it closes.
			if len(stack) > 0 {
				tokens[i].Parent = stack[len(stack)-1]
			} else {
				tokens[i].Parent = token.NoIndex
			}
			if tokens[openIdx].Kind == token.LBrace {
				tokens[openIdx].Owner = findBlockOwner(tokens, openIdx)
			}
		}
	}
	if len(stack) > 0 {
		openIdx := stack[len(stack)-1]
		return diag.Malformed(diag.StructUnclosedOpener, tokens[openIdx].Span,
			"'"+tokens[openIdx].Text+"' is never closed")
	}
	return nil
}

// blockOwnerKinds are the keywords that can own a brace block.
var blockOwnerKinds = map[token.Kind]bool{
	token.KwClass:     true,
	token.KwInterface: true,
	token.KwTrait:     true,
	token.KwFunction:  true,
	token.KwFn:        true,
	token.KwNamespace: true,
	token.KwIf:        true,
	token.KwElse:      true,
	token.KwElseif:    true,
	token.KwWhile:     true,
	token.KwFor:       true,
	token.KwForeach:   true,
}

// findBlockOwner walks backward from a '{' to the keyword that owns the
// block, jumping over bracketed groups (parameter lists) via their links.
// Returns NoIndex for bare blocks.
func findBlockOwner(tokens []token.Token, braceIdx int) int {
	for j := braceIdx - 1; j >= 0; j-- {
		t := tokens[j]
		if t.IsCloser() && t.Opener != token.NoIndex {
			j = t.Opener
			continue
		}
		if blockOwnerKinds[t.Kind] {
			return j
		}
		switch t.Kind {
		case token.Semicolon, token.LBrace, token.RBrace, token.OpenTag, token.CloseTag:
			return token.NoIndex
		}
	}
	return token.NoIndex
}

// Len returns the number of tokens, including the trailing EOF.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns a copy of the token at index i.
func (s *Stream) At(i int) token.Token {
	return s.tokens[i]
}

// Tokens returns the underlying token slice. Callers must not modify it.
func (s *Stream) Tokens() []token.Token {
	return s.tokens
}

// File returns the file this stream was built from.
func (s *Stream) File() *source.File {
	return s.file
}

// FileSet returns the owning file set.
func (s *Stream) FileSet() *source.FileSet {
	return s.fs
}

// Text re-joins all token texts. By the lossless tokenization contract the
// result is byte-identical to the source content.
func (s *Stream) Text() string {
	var b strings.Builder
	b.Grow(len(s.file.Content))
	for i := range s.tokens {
		b.WriteString(s.tokens[i].Text)
	}
	return b.String()
}
