package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"sniff/internal/diag"
	"sniff/internal/lexer"
	"sniff/internal/source"
	"sniff/internal/token"
)

// tokenizeString runs the lexer over a virtual file.
func tokenizeString(t *testing.T, input string) ([]token.Token, *diag.MalformedSourceError) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(input))
	return lexer.Tokenize(fs.Get(id))
}

// expectKinds checks the token kind sequence, EOF excluded.
func expectKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatalf("unexpected lex failure: %v\nInput: %q", err, input)
	}
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %s",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectFatal(t *testing.T, input string, code diag.Code) {
	t.Helper()
	tokens, err := tokenizeString(t, input)
	if err == nil {
		t.Fatalf("expected fatal %v, got %d tokens\nInput: %q", code, len(tokens), input)
	}
	if err.Code != code {
		t.Errorf("expected code %v, got %v (%s)", code, err.Code, err.Msg)
	}
	if tokens != nil {
		t.Errorf("expected nil tokens on fatal, got %d", len(tokens))
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestOpenCloseTags(t *testing.T) {
	expectKinds(t, "<?php ?>", []token.Kind{
		token.OpenTag, token.Whitespace, token.CloseTag,
	})
}

func TestInlineHTML(t *testing.T) {
	tokens, err := tokenizeString(t, "<html>\n<?php $x; ?>tail")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != token.InlineHTML || tokens[0].Text != "<html>\n" {
		t.Errorf("expected leading InlineHTML %q, got %v %q", "<html>\n", tokens[0].Kind, tokens[0].Text)
	}
	last := tokens[len(tokens)-2]
	if last.Kind != token.InlineHTML || last.Text != "tail" {
		t.Errorf("expected trailing InlineHTML, got %v %q", last.Kind, last.Text)
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectKinds(t, "<?php function Foo FUNCTION foo_1", []token.Kind{
		token.OpenTag, token.Whitespace,
		token.KwFunction, token.Whitespace,
		token.Ident, token.Whitespace,
		token.KwFunction, token.Whitespace, // keywords are case-insensitive
		token.Ident,
	})
}

func TestVariables(t *testing.T) {
	tokens, err := tokenizeString(t, "<?php $foo $_bar $x1")
	if err != nil {
		t.Fatal(err)
	}
	var vars []string
	for _, tok := range tokens {
		if tok.Kind == token.Variable {
			vars = append(vars, tok.Text)
		}
	}
	want := []string{"$foo", "$_bar", "$x1"}
	if len(vars) != len(want) {
		t.Fatalf("expected %v, got %v", want, vars)
	}
	for i := range want {
		if vars[i] != want[i] {
			t.Errorf("variable %d: expected %q, got %q", i, want[i], vars[i])
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"42", token.IntLit},
		{"0x1F", token.IntLit},
		{"0b1010", token.IntLit},
		{"0755", token.IntLit},
		{"1_000_000", token.IntLit},
		{"3.14", token.FloatLit},
		{"1e10", token.FloatLit},
		{"2.5e-3", token.FloatLit},
		{".5", token.FloatLit},
	}
	for _, tt := range tests {
		tokens, err := tokenizeString(t, "<?php "+tt.input)
		if err != nil {
			t.Errorf("%q: unexpected failure: %v", tt.input, err)
			continue
		}
		tok := tokens[2]
		if tok.Kind != tt.kind || tok.Text != tt.input {
			t.Errorf("%q: got %v %q, want %v", tt.input, tok.Kind, tok.Text, tt.kind)
		}
	}
}

func TestMemberAccessNotFloat(t *testing.T) {
	// '.' between idents is concatenation, not a float.
	expectKinds(t, `<?php $a.$b`, []token.Kind{
		token.OpenTag, token.Whitespace,
		token.Variable, token.Concat, token.Variable,
	})
}

func TestStrings(t *testing.T) {
	tests := []string{
		`'single'`,
		`"double"`,
		`'esc\'aped'`,
		`"with \"inner\" quotes"`,
		"'multi\nline'",
	}
	for _, input := range tests {
		tokens, err := tokenizeString(t, "<?php "+input)
		if err != nil {
			t.Errorf("%q: unexpected failure: %v", input, err)
			continue
		}
		tok := tokens[2]
		if tok.Kind != token.StringLit || tok.Text != input {
			t.Errorf("%q: got %v %q", input, tok.Kind, tok.Text)
		}
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"===", token.EqEqEq},
		{"==", token.EqEq},
		{"<=>", token.Spaceship},
		{"<=", token.LtEq},
		{"??=", token.NullAssign},
		{"??", token.QuestionQuestion},
		{"?->", token.NullArrow},
		{"->", token.Arrow},
		{"=>", token.DoubleArrow},
		{"::", token.DoubleColon},
		{"...", token.Ellipsis},
		{".=", token.ConcatAssign},
		{"\\", token.NsSep},
	}
	for _, tt := range tests {
		tokens, err := tokenizeString(t, "<?php "+tt.input)
		if err != nil {
			t.Errorf("%q: unexpected failure: %v", tt.input, err)
			continue
		}
		if tokens[2].Kind != tt.kind {
			t.Errorf("%q: got %v, want %v", tt.input, tokens[2].Kind, tt.kind)
		}
	}
}

func TestComments(t *testing.T) {
	expectKinds(t, "<?php // line\n# hash\n/* block */", []token.Kind{
		token.OpenTag, token.Whitespace,
		token.LineComment, token.Newline,
		token.LineComment, token.Newline,
		token.BlockComment,
	})
}

func TestDocBlockSubTokens(t *testing.T) {
	input := "<?php\n/**\n * @param string $x note\n */"
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatal(err)
	}

	var kinds []token.Kind
	var texts []string
	for _, tok := range tokens {
		if tok.IsDoc() {
			kinds = append(kinds, tok.Kind)
			texts = append(texts, tok.Text)
		}
	}
	wantKinds := []token.Kind{
		token.DocOpen, token.DocWhitespace,
		token.DocStar, token.DocWhitespace,
		token.DocTag, token.DocWhitespace, token.DocString, token.DocWhitespace,
		token.DocClose,
	}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("doc kinds: got %v\ntexts: %q", kinds, texts)
	}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] {
			t.Errorf("doc token %d: got %v %q, want %v", i, kinds[i], texts[i], wantKinds[i])
		}
	}
	if texts[4] != "@param" {
		t.Errorf("tag text: got %q, want %q", texts[4], "@param")
	}
	if texts[6] != "string $x note" {
		t.Errorf("tag content: got %q, want %q", texts[6], "string $x note")
	}
}

func TestDocBlockMultipleTags(t *testing.T) {
	input := "<?php\n/**\n * Summary line.\n *\n * @param int $a\n * @return bool\n */"
	tokens, err := tokenizeString(t, input)
	if err != nil {
		t.Fatal(err)
	}
	var tags []string
	for _, tok := range tokens {
		if tok.Kind == token.DocTag {
			tags = append(tags, tok.Text)
		}
	}
	if len(tags) != 2 || tags[0] != "@param" || tags[1] != "@return" {
		t.Errorf("tags: got %v", tags)
	}
}

func TestPlainBlockCommentIsNotDoc(t *testing.T) {
	tokens, err := tokenizeString(t, "<?php /* @param not a tag */")
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range tokens {
		if tok.IsDoc() {
			t.Fatalf("plain block comment produced doc token %v", tok.Kind)
		}
	}
}

func TestLosslessness(t *testing.T) {
	inputs := []string{
		"<?php\nfunction foo($a, $b) {\n    return $a + $b;\n}\n",
		"<html><?php echo 'hi'; ?></html>",
		"<?php\n/**\n * @param string|null $x\n */\nfunction f($x) {}\n",
		"<?php use A\\B; use C\\D;\n\n$x = [1, 2, 3];\n",
		"<?php # comment\n$y = \"str\" . 1.5e3 ?? $z;\n",
	}
	for _, input := range inputs {
		tokens, err := tokenizeString(t, input)
		if err != nil {
			t.Errorf("unexpected failure: %v\nInput: %q", err, input)
			continue
		}
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(tok.Text)
		}
		if b.String() != input {
			t.Errorf("token texts do not reproduce input\nwant: %q\ngot:  %q", input, b.String())
		}
	}
}

func TestFatalCases(t *testing.T) {
	expectFatal(t, "<?php 'unterminated", diag.LexUnterminatedString)
	expectFatal(t, "<?php /* no end", diag.LexUnterminatedComment)
	expectFatal(t, "<?php /** no end", diag.LexUnterminatedDocBlock)
	expectFatal(t, "<?php 0x", diag.LexBadNumber)
	expectFatal(t, "<?php 0b", diag.LexBadNumber)
}

func TestUnknownByteIsInvalidToken(t *testing.T) {
	// Losslessness holds even for bytes no rule understands.
	tokens, err := tokenizeString(t, "<?php `")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.Invalid && tok.Text == "`" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Invalid token for backtick, got %s", tokensToString(tokens))
	}
}

func TestCloseTagReturnsToHTML(t *testing.T) {
	expectKinds(t, "<?php $a; ?>text<?php $b;", []token.Kind{
		token.OpenTag, token.Whitespace, token.Variable, token.Semicolon,
		token.Whitespace, token.CloseTag, token.InlineHTML,
		token.OpenTag, token.Whitespace, token.Variable, token.Semicolon,
	})
}
