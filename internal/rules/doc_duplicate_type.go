package rules

import (
	"fmt"
	"strings"

	"sniff/internal/diag"
	"sniff/internal/docblock"
	"sniff/internal/rule"
	"sniff/internal/stream"
	"sniff/internal/token"
)

// DuplicateType reports a union that names the same type twice. There is
// no safe automatic fix: dropping a duplicate silently changes what the
// author wrote, so this stays an error.
type DuplicateType struct{}

func (DuplicateType) Name() string { return "docblock.DuplicateType" }

func (DuplicateType) Triggers() []token.Kind { return []token.Kind{token.DocTag} }

func (DuplicateType) Process(ctx *rule.Context, i int) {
	tag, ok := docblock.TagAt(ctx.Stream, i)
	if !ok || !typedTags[tag.Name] || tag.StringIdx == stream.NotFound {
		return
	}
	parts := docblock.SplitTypes(tag.Type)
	if len(parts) < 2 {
		return
	}
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		key := strings.ToLower(p)
		if seen[key] {
			sp := ctx.Stream.At(tag.StringIdx).Span
			ctx.Report(diag.NewError(diag.RuleDuplicateType, sp,
				fmt.Sprintf("type %q appears more than once in %q", p, tag.Type)))
			return
		}
		seen[key] = true
	}
}
