package rules

import (
	"fmt"

	"sniff/internal/diag"
	"sniff/internal/docblock"
	"sniff/internal/rule"
	"sniff/internal/stream"
	"sniff/internal/token"
)

// ParamMatch checks that a documented function's @param annotations agree
// with the declared parameter list in both order and names. Mismatches
// are errors; rewriting either side would guess the author's intent.
type ParamMatch struct{}

func (ParamMatch) Name() string { return "docblock.ParamMatch" }

func (ParamMatch) Triggers() []token.Kind { return []token.Kind{token.KwFunction} }

func (ParamMatch) Process(ctx *rule.Context, i int) {
	docOpen := docblock.Find(ctx.Stream, i)
	if docOpen == stream.NotFound {
		return
	}
	var params []docblock.Tag
	for _, t := range docblock.Tags(ctx.Stream, docOpen) {
		if t.Name == "param" {
			params = append(params, t)
		}
	}
	if len(params) == 0 {
		return
	}
	sig := docblock.Signature(ctx.Stream, i)

	for k, p := range sig {
		if k >= len(params) {
			ctx.Report(diag.NewError(diag.RuleParamMatch, ctx.Stream.At(i).Span,
				fmt.Sprintf("parameter %s has no @param annotation", p.Name)))
			continue
		}
		tag := params[k]
		if tag.Var == "" {
			ctx.Report(diag.NewError(diag.RuleParamMatch, ctx.Stream.At(tag.TagIdx).Span,
				fmt.Sprintf("@param for %s is missing the variable name", p.Name)))
			continue
		}
		if tag.Var != p.Name {
			ctx.Report(diag.NewError(diag.RuleParamMatch, ctx.Stream.At(tag.TagIdx).Span,
				fmt.Sprintf("@param %s does not match declared parameter %s", tag.Var, p.Name)).
				WithNote(ctx.Stream.At(p.Idx).Span, fmt.Sprintf("declared as %s here", p.Name)))
		}
	}
	for k := len(sig); k < len(params); k++ {
		name := params[k].Var
		if name == "" {
			name = "@param #" + fmt.Sprint(k+1)
		}
		ctx.Report(diag.NewError(diag.RuleParamMatch, ctx.Stream.At(params[k].TagIdx).Span,
			fmt.Sprintf("%s is documented but not declared", name)))
	}
}
