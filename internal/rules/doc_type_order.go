// Package rules ships the built-in style policies. Each rule lives in its
// own file and registers through RegisterAll.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"sniff/internal/diag"
	"sniff/internal/docblock"
	"sniff/internal/rule"
	"sniff/internal/stream"
	"sniff/internal/token"
)

// typedTags are the annotations whose first word is a type expression.
var typedTags = map[string]bool{
	"param":  true,
	"return": true,
	"var":    true,
}

// typeRank pushes the nullish pseudo-types to the back of a union; all
// other types keep their relative order.
var typeRank = map[string]int{
	"void":  1,
	"false": 2,
	"null":  3,
}

// TypeOrder requires union types in @param/@return/@var annotations to
// list real types first and void/false/null last.
type TypeOrder struct{}

func (TypeOrder) Name() string { return "docblock.TypeOrder" }

func (TypeOrder) Triggers() []token.Kind { return []token.Kind{token.DocTag} }

func (TypeOrder) Process(ctx *rule.Context, i int) {
	tag, ok := docblock.TagAt(ctx.Stream, i)
	if !ok || !typedTags[tag.Name] || tag.StringIdx == stream.NotFound {
		return
	}
	parts := docblock.SplitTypes(tag.Type)
	if len(parts) < 2 {
		return
	}
	sorted := sortUnion(parts)
	want := docblock.JoinTypes(sorted)
	if want == tag.Type {
		return
	}

	sp := ctx.Stream.At(tag.StringIdx).Span
	v := diag.NewWarning(diag.RuleTypeOrder, sp,
		fmt.Sprintf("union type %q should be written %q", tag.Type, want))
	if !ctx.Report(v) {
		return
	}
	ctx.Fixer.BeginChangeset()
	ctx.Fixer.ReplaceToken(tag.StringIdx, want+tag.Rest)
	if ctx.Fixer.EndChangeset() {
		ctx.MarkFixed()
	}
}

// sortUnion orders the parts by rank, keeping the original order inside
// each rank.
func sortUnion(parts []string) []string {
	out := make([]string, len(parts))
	copy(out, parts)
	sort.SliceStable(out, func(a, b int) bool {
		return typeRank[strings.ToLower(out[a])] < typeRank[strings.ToLower(out[b])]
	})
	return out
}
