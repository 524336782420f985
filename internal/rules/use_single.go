package rules

import (
	"fmt"

	"sniff/internal/diag"
	"sniff/internal/rule"
	"sniff/internal/stream"
	"sniff/internal/token"
)

// isImportUse reports whether the use keyword at i starts a top-level
// import statement. Closure captures and trait usage inside class bodies
// are silently skipped.
func isImportUse(s *stream.Stream, i int) bool {
	if s.HasEnclosingScope(i, token.LParen,
		token.KwClass, token.KwInterface, token.KwTrait,
		token.KwFunction, token.KwFn) {
		return false
	}
	// A closure capture list follows the parameter list's ')'.
	if p := s.PrevCode(i - 1); p != stream.NotFound && s.At(p).Kind == token.RParen {
		return false
	}
	return true
}

// SingleUse requires one import per use statement and splits combined
// statements apart.
type SingleUse struct{}

func (SingleUse) Name() string { return "imports.SingleUse" }

func (SingleUse) Triggers() []token.Kind { return []token.Kind{token.KwUse} }

func (SingleUse) Process(ctx *rule.Context, i int) {
	s := ctx.Stream
	if !isImportUse(s, i) {
		return
	}
	end := s.FindEndOfStatement(i)
	var commas []int
	for j := i + 1; j <= end; j++ {
		t := s.At(j)
		if t.IsOpener() && t.Closer != token.NoIndex {
			j = t.Closer
			continue
		}
		if t.Kind == token.Comma {
			commas = append(commas, j)
		}
	}
	if len(commas) == 0 {
		return
	}

	v := diag.NewWarning(diag.RuleSingleUse, s.At(i).Span,
		fmt.Sprintf("use statement declares %d imports, expected one per statement", len(commas)+1))
	if !ctx.Report(v) {
		return
	}
	ctx.Fixer.BeginChangeset()
	for _, c := range commas {
		// "use A, B;" becomes "use A;\nuse B;". The space after the comma,
		// when present, separates the new keyword from its import.
		if c+1 <= end && s.At(c+1).Kind == token.Whitespace {
			ctx.Fixer.ReplaceToken(c, ";\nuse")
		} else {
			ctx.Fixer.ReplaceToken(c, ";\nuse ")
		}
	}
	if ctx.Fixer.EndChangeset() {
		ctx.MarkFixed()
	}
}
