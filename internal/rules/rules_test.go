package rules_test

import (
	"strings"
	"testing"

	"sniff/internal/diag"
	"sniff/internal/engine"
	"sniff/internal/rule"
	"sniff/internal/rules"
	"sniff/internal/source"
)

func run(t *testing.T, input string, opts engine.Options) engine.FileResult {
	t.Helper()
	reg := rule.NewRegistry()
	rules.RegisterAll(reg)
	return runWith(t, input, reg, opts)
}

func runWith(t *testing.T, input string, reg *rule.Registry, opts engine.Options) engine.FileResult {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(input))
	res := engine.New(reg, opts).RunFile(fs, id)
	if res.Malformed != nil {
		t.Fatalf("unexpected malformed source: %v\nInput: %q", res.Malformed, input)
	}
	return res
}

func check(t *testing.T, input string) engine.FileResult {
	t.Helper()
	return run(t, input, engine.Options{})
}

func fix(t *testing.T, input string) engine.FileResult {
	t.Helper()
	return run(t, input, engine.Options{Fix: true})
}

func codes(res engine.FileResult) []diag.Code {
	var out []diag.Code
	for _, v := range res.Bag.Items() {
		out = append(out, v.Code)
	}
	return out
}

func expectCodes(t *testing.T, res engine.FileResult, want ...diag.Code) {
	t.Helper()
	got := codes(res)
	if len(got) != len(want) {
		t.Fatalf("violations: got %v, want %v\nitems: %+v", got, want, res.Bag.Items())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("violation %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTypeOrderReported(t *testing.T) {
	res := check(t, "<?php\n/**\n * @param string|null|false $x\n */\nfunction f($x) {}\n")
	expectCodes(t, res, diag.RuleTypeOrder)

	v := res.Bag.Items()[0]
	if v.Severity != diag.SevWarning {
		t.Errorf("severity: got %v", v.Severity)
	}
	if !strings.Contains(v.Message, `"string|false|null"`) {
		t.Errorf("message does not name the wanted order: %q", v.Message)
	}
}

func TestTypeOrderFixed(t *testing.T) {
	res := fix(t, "<?php\n/**\n * @param string|null|false $x\n */\nfunction f($x) {}\n")
	if !strings.Contains(res.Output, "@param string|false|null $x") {
		t.Errorf("output not fixed:\n%s", res.Output)
	}
	if res.Applied == 0 || !res.Changed {
		t.Errorf("applied=%d changed=%v", res.Applied, res.Changed)
	}
	expectCodes(t, res, diag.RuleTypeOrder)
	if v := res.Bag.Items()[0]; !v.Fixed {
		t.Errorf("violation not marked fixed: %+v", v)
	}
	if res.Bag.FixedCount() != 1 {
		t.Errorf("fixed count: got %d, want 1", res.Bag.FixedCount())
	}
}

func TestTypeOrderAlreadySorted(t *testing.T) {
	res := check(t, "<?php\n/**\n * @return int|false|null\n */\nfunction f() {}\n")
	expectCodes(t, res)
}

func TestTypeOrderKeepsRealTypeOrder(t *testing.T) {
	// Real types keep their written order; only the pseudo-types move back.
	res := fix(t, "<?php\n/**\n * @var null|Bee|Ant $x\n */\n$x = null;\n")
	if !strings.Contains(res.Output, "@var Bee|Ant|null $x") {
		t.Errorf("output:\n%s", res.Output)
	}
}

func TestDuplicateTypeNotFixable(t *testing.T) {
	input := "<?php\n/**\n * @return string|string\n */\nfunction f() {}\n"
	res := fix(t, input)
	expectCodes(t, res, diag.RuleDuplicateType)

	v := res.Bag.Items()[0]
	if v.Severity != diag.SevError || v.Fixed {
		t.Errorf("duplicate type: severity=%v fixed=%v", v.Severity, v.Fixed)
	}
	if res.Changed || res.Output != input {
		t.Errorf("output was rewritten:\n%s", res.Output)
	}
}

func TestDuplicateTypeCaseInsensitive(t *testing.T) {
	res := check(t, "<?php\n/**\n * @var Foo|foo\n */\n$x = 1;\n")
	expectCodes(t, res, diag.RuleDuplicateType)
}

func TestQualifiedTypeFixed(t *testing.T) {
	res := fix(t, "<?php\nuse App\\Foo;\n/**\n * @return Foo\n */\nfunction f() {}\n")
	if !strings.Contains(res.Output, "@return \\App\\Foo") {
		t.Errorf("output:\n%s", res.Output)
	}
}

func TestQualifiedTypeArraySuffix(t *testing.T) {
	res := fix(t, "<?php\nuse App\\Foo;\n/**\n * @param Foo[] $xs\n */\nfunction f($xs) {}\n")
	if !strings.Contains(res.Output, "@param \\App\\Foo[] $xs") {
		t.Errorf("output:\n%s", res.Output)
	}
}

func TestQualifiedTypeRespectsAlias(t *testing.T) {
	res := fix(t, "<?php\nuse App\\Foo as Bar;\n/**\n * @return Bar\n */\nfunction f() {}\n")
	if !strings.Contains(res.Output, "@return \\App\\Foo") {
		t.Errorf("output:\n%s", res.Output)
	}
}

func TestQualifiedTypeSkipsBuiltinsAndUnimported(t *testing.T) {
	res := check(t, "<?php\nuse App\\Foo;\n/**\n * @param string $a\n * @param Other $b\n */\nfunction f($a, $b) {}\n")
	expectCodes(t, res)
}

func TestParamMatchNameMismatch(t *testing.T) {
	res := check(t, "<?php\n/**\n * @param int $a\n */\nfunction f($b) {}\n")
	expectCodes(t, res, diag.RuleParamMatch)
	v := res.Bag.Items()[0]
	if !strings.Contains(v.Message, "$a") || !strings.Contains(v.Message, "$b") {
		t.Errorf("message: %q", v.Message)
	}
	if len(v.Notes) != 1 || !strings.Contains(v.Notes[0].Msg, "$b") {
		t.Errorf("note pointing at the declaration missing: %+v", v.Notes)
	}
}

func TestParamMatchMissingAnnotation(t *testing.T) {
	res := check(t, "<?php\n/**\n * @param int $a\n */\nfunction f($a, $b) {}\n")
	expectCodes(t, res, diag.RuleParamMatch)
	if msg := res.Bag.Items()[0].Message; !strings.Contains(msg, "no @param") {
		t.Errorf("message: %q", msg)
	}
}

func TestParamMatchExtraAnnotation(t *testing.T) {
	res := check(t, "<?php\n/**\n * @param int $a\n * @param int $b\n */\nfunction f($a) {}\n")
	expectCodes(t, res, diag.RuleParamMatch)
	if msg := res.Bag.Items()[0].Message; !strings.Contains(msg, "documented but not declared") {
		t.Errorf("message: %q", msg)
	}
}

func TestParamMatchAgreement(t *testing.T) {
	res := check(t, "<?php\n/**\n * @param int $a\n * @param string $b\n */\nfunction f(int $a, string $b) {}\n")
	expectCodes(t, res)
}

func TestParamMatchUndocumentedFunctionIgnored(t *testing.T) {
	res := check(t, "<?php\nfunction f($a, $b) {}\n")
	expectCodes(t, res)
}

func TestSingleUseSplit(t *testing.T) {
	res := fix(t, "<?php\nuse A\\B, C\\D;\n$x = 1;\n")
	want := "<?php\nuse A\\B;\nuse C\\D;\n$x = 1;\n"
	if res.Output != want {
		t.Errorf("output:\nwant %q\ngot  %q", want, res.Output)
	}
}

func TestSingleUseThreeImports(t *testing.T) {
	res := fix(t, "<?php\nuse A, B, C;\n")
	want := "<?php\nuse A;\nuse B;\nuse C;\n"
	if res.Output != want {
		t.Errorf("output:\nwant %q\ngot  %q", want, res.Output)
	}
}

func TestSingleUseSkipsTraitAndClosure(t *testing.T) {
	res := check(t, "<?php\nclass X { use T1, T2; }\n$f = function () use ($a, $b) {};\n")
	expectCodes(t, res)
}

func TestBlankLineRemoved(t *testing.T) {
	res := fix(t, "<?php\nuse A\\B;\n\nuse C\\D;\n")
	want := "<?php\nuse A\\B;\nuse C\\D;\n"
	if res.Output != want {
		t.Errorf("output:\nwant %q\ngot  %q", want, res.Output)
	}
}

func TestBlankLineAdjacentIsClean(t *testing.T) {
	res := check(t, "<?php\nuse A\\B;\nuse C\\D;\n")
	expectCodes(t, res)
}

func TestBlankLineKeptAroundComment(t *testing.T) {
	res := check(t, "<?php\nuse A\\B;\n\n// group two\nuse C\\D;\n")
	expectCodes(t, res)
}

func TestSeverityOverrideBlocksFix(t *testing.T) {
	// Promoted to error, the violation is reported but never rewritten.
	res := run(t, "<?php\n/**\n * @param null|int $x\n */\nfunction f($x) {}\n", engine.Options{
		Fix:        true,
		Severities: map[string]diag.Severity{"docblock.TypeOrder": diag.SevError},
	})
	expectCodes(t, res, diag.RuleTypeOrder)
	if res.Bag.Items()[0].Severity != diag.SevError {
		t.Errorf("severity: got %v", res.Bag.Items()[0].Severity)
	}
	if res.Changed {
		t.Errorf("output was rewritten despite error severity:\n%s", res.Output)
	}
}

func TestDisabledRuleSkipped(t *testing.T) {
	reg := rule.NewRegistry()
	rules.RegisterAll(reg)
	reg.Disable("imports.SingleUse")

	res := runWith(t, "<?php\nuse A, B;\n", reg, engine.Options{})
	expectCodes(t, res)
}

func TestRuleNameTagged(t *testing.T) {
	res := check(t, "<?php\nuse A, B;\n")
	expectCodes(t, res, diag.RuleSingleUse)
	if got := res.Bag.Items()[0].Rule; got != "imports.SingleUse" {
		t.Errorf("rule name: got %q", got)
	}
}
