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

// builtinTypes never qualify, regardless of imports.
var builtinTypes = map[string]bool{
	"string": true, "int": true, "integer": true, "float": true,
	"double": true, "bool": true, "boolean": true, "array": true,
	"object": true, "mixed": true, "void": true, "null": true,
	"false": true, "true": true, "callable": true, "iterable": true,
	"self": true, "static": true, "parent": true, "never": true,
	"resource": true,
}

// QualifiedType rewrites a short class name in an annotation to the fully
// qualified form when the file imports exactly that name. The rule is
// stateless: one registry instance serves every driver worker, so the
// import map is read from the current pass's stream on each invocation.
type QualifiedType struct{}

func (QualifiedType) Name() string { return "docblock.QualifiedType" }

func (QualifiedType) Triggers() []token.Kind { return []token.Kind{token.DocTag} }

func (QualifiedType) Process(ctx *rule.Context, i int) {
	tag, ok := docblock.TagAt(ctx.Stream, i)
	if !ok || !typedTags[tag.Name] || tag.StringIdx == stream.NotFound {
		return
	}
	imports := docblock.Imports(ctx.Stream)
	if len(imports) == 0 {
		return
	}

	parts := docblock.SplitTypes(tag.Type)
	changed := false
	var short, full string
	for k, p := range parts {
		base := strings.TrimSuffix(p, "[]")
		if builtinTypes[strings.ToLower(base)] || strings.Contains(base, "\\") {
			continue
		}
		fqn, ok := imports[base]
		if !ok {
			continue
		}
		parts[k] = "\\" + fqn + strings.TrimPrefix(p, base)
		short, full = base, "\\"+fqn
		changed = true
	}
	if !changed {
		return
	}

	sp := ctx.Stream.At(tag.StringIdx).Span
	v := diag.NewWarning(diag.RuleQualifiedType, sp,
		fmt.Sprintf("type %q should use its fully-qualified name %q", short, full))
	if !ctx.Report(v) {
		return
	}
	ctx.Fixer.BeginChangeset()
	ctx.Fixer.ReplaceToken(tag.StringIdx, docblock.JoinTypes(parts)+tag.Rest)
	if ctx.Fixer.EndChangeset() {
		ctx.MarkFixed()
	}
}
