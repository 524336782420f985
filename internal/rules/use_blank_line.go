package rules

import (
	"sniff/internal/diag"
	"sniff/internal/rule"
	"sniff/internal/stream"
	"sniff/internal/token"
)

// BlankLine requires consecutive top-level use statements to sit on
// adjacent lines and removes extra blank lines between them.
type BlankLine struct{}

func (BlankLine) Name() string { return "imports.BlankLine" }

func (BlankLine) Triggers() []token.Kind { return []token.Kind{token.KwUse} }

func (BlankLine) Process(ctx *rule.Context, i int) {
	s := ctx.Stream
	if !isImportUse(s, i) {
		return
	}
	prev := s.PrevCode(i - 1)
	if prev == stream.NotFound || s.At(prev).Kind != token.Semicolon {
		return
	}
	// The previous statement must itself be a use import.
	k := s.FindPrev(prev-1, stream.NotFound, stream.KindIn(
		token.KwUse, token.Semicolon, token.OpenTag,
		token.LBrace, token.RBrace))
	if k == stream.NotFound || s.At(k).Kind != token.KwUse || !isImportUse(s, k) {
		return
	}

	// Everything between the semicolon and this use must be pure spacing;
	// a comment in the gap keeps its surrounding blank lines.
	newlines := 0
	for j := prev + 1; j < i; j++ {
		switch s.At(j).Kind {
		case token.Newline:
			newlines++
		case token.Whitespace:
		default:
			return
		}
	}
	if newlines <= 1 {
		return
	}

	v := diag.NewWarning(diag.RuleBlankLine, s.At(i).Span,
		"blank line between use statements")
	if !ctx.Report(v) {
		return
	}
	ctx.Fixer.BeginChangeset()
	ctx.Fixer.ReplaceRange(prev+1, i-1, "\n")
	if ctx.Fixer.EndChangeset() {
		ctx.MarkFixed()
	}
}
