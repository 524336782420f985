package token

import (
	"sniff/internal/source"
)

// NoIndex marks an absent token-index link.
const NoIndex = -1

// Token represents a single source token with its location and scope links.
// Opener, Closer, Parent and Owner are indices into the owning stream; they
// are invalidated whenever the fixer rewrites the text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32
	Col  uint32

	// Opener/Closer link matching boundary tokens ('{'/'}', '('/')',
	// '['/']', DocOpen/DocClose). NoIndex when the token is not a boundary.
	Opener int
	Closer int
	// Parent is the index of the innermost enclosing group opener, or
	// NoIndex at the top level.
	Parent int
	// Owner, set on block openers, is the index of the keyword token that
	// owns the block (class, function, ...), or NoIndex for bare blocks.
	Owner int
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFunction, KwFn, KwClass, KwInterface, KwTrait, KwNamespace, KwUse,
		KwAs, KwConst, KwPublic, KwPrivate, KwProtected, KwStatic, KwAbstract,
		KwFinal, KwReturn, KwIf, KwElse, KwElseif, KwWhile, KwFor, KwForeach,
		KwNew, KwEcho, KwInstanceof, KwExtends, KwImplements, KwTrue, KwFalse,
		KwNull:
		return true
	default:
		return false
	}
}

// IsWhitespace reports whether the token is insignificant spacing,
// including newlines and doc-block interior whitespace.
func (t Token) IsWhitespace() bool {
	switch t.Kind {
	case Whitespace, Newline, DocWhitespace:
		return true
	default:
		return false
	}
}

// IsComment reports whether the token belongs to any comment, including
// doc-block sub-tokens.
func (t Token) IsComment() bool {
	switch t.Kind {
	case LineComment, BlockComment, DocOpen, DocClose, DocStar, DocTag,
		DocString, DocWhitespace:
		return true
	default:
		return false
	}
}

// IsDoc reports whether the token is part of a doc-block.
func (t Token) IsDoc() bool {
	switch t.Kind {
	case DocOpen, DocClose, DocStar, DocTag, DocString, DocWhitespace:
		return true
	default:
		return false
	}
}

// IsOpener reports whether the token opens a bracketed group or doc-block.
func (t Token) IsOpener() bool {
	switch t.Kind {
	case LParen, LBrace, LBracket, DocOpen:
		return true
	default:
		return false
	}
}

// IsCloser reports whether the token closes a bracketed group or doc-block.
func (t Token) IsCloser() bool {
	switch t.Kind {
	case RParen, RBrace, RBracket, DocClose:
		return true
	default:
		return false
	}
}

// MatchingCloser returns the closer kind for an opener kind.
func MatchingCloser(k Kind) (Kind, bool) {
	switch k {
	case LParen:
		return RParen, true
	case LBrace:
		return RBrace, true
	case LBracket:
		return RBracket, true
	case DocOpen:
		return DocClose, true
	default:
		return 0, false
	}
}
