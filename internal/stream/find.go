package stream

import (
	"sniff/internal/token"
)

// NotFound is the sentinel returned by all searches. Callers must check it;
// it is never a valid index.
const NotFound = -1

// Pred selects tokens during a search.
type Pred func(token.Token) bool

// KindIn matches any of the given kinds.
func KindIn(kinds ...token.Kind) Pred {
	set := make(map[token.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return func(t token.Token) bool { return set[t.Kind] }
}

// Not inverts a predicate; combined with FindNext it gives the "exclude"
// search: first token NOT matching the set.
func Not(p Pred) Pred {
	return func(t token.Token) bool { return !p(t) }
}

// IsCode matches tokens that are neither whitespace nor comments.
func IsCode(t token.Token) bool {
	return !t.IsWhitespace() && !t.IsComment() && t.Kind != token.EOF
}

// FindNext scans forward from from (inclusive) to to (inclusive; pass
// NotFound for end of stream) and returns the first index satisfying pred,
// or NotFound.
func (s *Stream) FindNext(from, to int, pred Pred) int {
	if from < 0 {
		from = 0
	}
	if to == NotFound || to >= len(s.tokens) {
		to = len(s.tokens) - 1
	}
	for i := from; i <= to; i++ {
		if pred(s.tokens[i]) {
			return i
		}
	}
	return NotFound
}

// FindPrev scans backward from from (inclusive) down to to (inclusive;
// pass NotFound for start of stream) and returns the first index
// satisfying pred, or NotFound.
func (s *Stream) FindPrev(from, to int, pred Pred) int {
	if from >= len(s.tokens) {
		from = len(s.tokens) - 1
	}
	if to == NotFound {
		to = 0
	}
	for i := from; i >= to && i >= 0; i-- {
		if pred(s.tokens[i]) {
			return i
		}
	}
	return NotFound
}

// NextCode returns the first code token (no whitespace, no comments) at or
// after from, or NotFound.
func (s *Stream) NextCode(from int) int {
	return s.FindNext(from, NotFound, IsCode)
}

// PrevCode returns the first code token at or before from, or NotFound.
func (s *Stream) PrevCode(from int) int {
	return s.FindPrev(from, NotFound, IsCode)
}

// FindEndOfStatement scans forward from i to the top-level statement
// terminator, skipping nested bracket groups via their closer links. The
// returned index is the terminating semicolon, the closing brace of a
// block statement, or the last token before an enclosing scope closes.
func (s *Stream) FindEndOfStatement(i int) int {
	for j := i; j < len(s.tokens); j++ {
		t := s.tokens[j]
		switch {
		case t.IsOpener() && t.Closer != token.NoIndex:
			if t.Kind == token.LBrace && j > i {
				// A block belonging to this statement terminates it.
				return t.Closer
			}
			j = t.Closer

		case t.Kind == token.Semicolon:
			return j

		case t.IsCloser():
			// Closer of a scope that encloses i: the statement ended just
			// before it.
			if j > i {
				return j - 1
			}

		case t.Kind == token.EOF:
			if j > i {
				return j - 1
			}
			return j
		}
	}
	return len(s.tokens) - 1
}

// HasEnclosingScope walks the Parent chain from i and reports whether any
// enclosing group matches: bracket kinds (LParen, LBracket) match the
// opener itself, keyword kinds (KwClass, KwFunction, ...) match a brace
// block's owner.
func (s *Stream) HasEnclosingScope(i int, kinds ...token.Kind) bool {
	set := make(map[token.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	for p := s.tokens[i].Parent; p != token.NoIndex; p = s.tokens[p].Parent {
		opener := s.tokens[p]
		if set[opener.Kind] {
			return true
		}
		if opener.Kind == token.LBrace && opener.Owner != token.NoIndex {
			if set[s.tokens[opener.Owner].Kind] {
				return true
			}
		}
	}
	return false
}
