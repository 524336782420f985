package stream_test

import (
	"testing"

	"sniff/internal/diag"
	"sniff/internal/source"
	"sniff/internal/stream"
	"sniff/internal/token"
)

func buildString(t *testing.T, input string) *stream.Stream {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(input))
	s, err := stream.Build(fs, id)
	if err != nil {
		t.Fatalf("unexpected build failure: %v\nInput: %q", err, input)
	}
	return s
}

func findKind(t *testing.T, s *stream.Stream, kind token.Kind) int {
	t.Helper()
	i := s.FindNext(0, stream.NotFound, stream.KindIn(kind))
	if i == stream.NotFound {
		t.Fatalf("no %v token in stream", kind)
	}
	return i
}

func TestScopeLinks(t *testing.T) {
	s := buildString(t, "<?php function f($a) { return [$a]; }")

	lparen := findKind(t, s, token.LParen)
	rparen := s.At(lparen).Closer
	if rparen == token.NoIndex || s.At(rparen).Kind != token.RParen {
		t.Fatalf("LParen closer not linked")
	}
	if s.At(rparen).Opener != lparen {
		t.Errorf("RParen opener: got %d, want %d", s.At(rparen).Opener, lparen)
	}

	lbrace := findKind(t, s, token.LBrace)
	rbrace := s.At(lbrace).Closer
	if rbrace == token.NoIndex || s.At(rbrace).Kind != token.RBrace {
		t.Fatalf("LBrace closer not linked")
	}

	lbracket := findKind(t, s, token.LBracket)
	if s.At(lbracket).Parent != lbrace {
		t.Errorf("bracket parent: got %d, want brace %d", s.At(lbracket).Parent, lbrace)
	}
}

func TestBlockOwner(t *testing.T) {
	s := buildString(t, "<?php class Foo { public function bar() {} }")

	classKw := findKind(t, s, token.KwClass)
	fnKw := findKind(t, s, token.KwFunction)

	classBrace := findKind(t, s, token.LBrace)
	if s.At(classBrace).Owner != classKw {
		t.Errorf("class brace owner: got %d, want %d", s.At(classBrace).Owner, classKw)
	}

	fnBrace := s.FindNext(classBrace+1, stream.NotFound, stream.KindIn(token.LBrace))
	if fnBrace == stream.NotFound {
		t.Fatal("function brace not found")
	}
	if s.At(fnBrace).Owner != fnKw {
		t.Errorf("function brace owner: got %d, want %d", s.At(fnBrace).Owner, fnKw)
	}
}

func TestBareBlockHasNoOwner(t *testing.T) {
	s := buildString(t, "<?php $a = 1; { $b = 2; }")
	lbrace := findKind(t, s, token.LBrace)
	if s.At(lbrace).Owner != token.NoIndex {
		t.Errorf("bare block owner: got %d, want NoIndex", s.At(lbrace).Owner)
	}
}

func TestDocBlockLinked(t *testing.T) {
	s := buildString(t, "<?php\n/** @var int $x */\n$x = 1;")
	open := findKind(t, s, token.DocOpen)
	close := s.At(open).Closer
	if close == token.NoIndex || s.At(close).Kind != token.DocClose {
		t.Fatalf("DocOpen not linked to DocClose")
	}
}

func TestMalformedStructures(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"<?php )", diag.StructUnmatchedCloser},
		{"<?php (]", diag.StructUnmatchedCloser},
		{"<?php {", diag.StructUnclosedOpener},
		{"<?php ([)]", diag.StructUnmatchedCloser},
	}
	for _, tt := range tests {
		fs := source.NewFileSet()
		id := fs.AddVirtual("test.php", []byte(tt.input))
		_, err := stream.Build(fs, id)
		if err == nil {
			t.Errorf("%q: expected %v, got success", tt.input, tt.code)
			continue
		}
		if err.Code != tt.code {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.code, err.Code)
		}
	}
}

func TestFindNextAndPrev(t *testing.T) {
	s := buildString(t, "<?php $a = 1; // note\n$b = 2;")

	first := s.NextCode(0)
	if s.At(first).Kind != token.OpenTag {
		t.Errorf("first code token: got %v", s.At(first).Kind)
	}

	comment := s.FindNext(0, stream.NotFound, stream.KindIn(token.LineComment))
	if comment == stream.NotFound {
		t.Fatal("comment not found")
	}
	// The next code token after the comment is $b.
	next := s.NextCode(comment + 1)
	if s.At(next).Kind != token.Variable || s.At(next).Text != "$b" {
		t.Errorf("code after comment: got %v %q", s.At(next).Kind, s.At(next).Text)
	}

	prev := s.PrevCode(comment)
	if s.At(prev).Kind != token.Semicolon {
		t.Errorf("code before comment: got %v", s.At(prev).Kind)
	}
}

func TestFindNextBounded(t *testing.T) {
	s := buildString(t, "<?php $a; $b;")
	semi := s.FindNext(0, stream.NotFound, stream.KindIn(token.Semicolon))
	// Search bounded to before the first semicolon must not find one.
	if got := s.FindNext(0, semi-1, stream.KindIn(token.Semicolon)); got != stream.NotFound {
		t.Errorf("bounded search found %d", got)
	}
}

func TestFindEndOfStatement(t *testing.T) {
	s := buildString(t, "<?php $a = f(1, g(2)); $b = 3;")
	start := findKind(t, s, token.Variable)
	end := s.FindEndOfStatement(start)
	if s.At(end).Kind != token.Semicolon {
		t.Fatalf("end of statement: got %v %q", s.At(end).Kind, s.At(end).Text)
	}
	// It must be the first top-level semicolon, not one inside the calls.
	if prev := s.PrevCode(end - 1); s.At(prev).Kind != token.RParen {
		t.Errorf("token before end: got %v", s.At(prev).Kind)
	}
}

func TestFindEndOfStatementBlock(t *testing.T) {
	s := buildString(t, "<?php function f() { $a = 1; } $b = 2;")
	start := findKind(t, s, token.KwFunction)
	end := s.FindEndOfStatement(start)
	if s.At(end).Kind != token.RBrace {
		t.Errorf("function statement end: got %v %q", s.At(end).Kind, s.At(end).Text)
	}
}

func TestHasEnclosingScope(t *testing.T) {
	s := buildString(t, "<?php class Foo { use Bar; } use Baz;")

	classUse := s.FindNext(0, stream.NotFound, stream.KindIn(token.KwUse))
	if !s.HasEnclosingScope(classUse, token.KwClass) {
		t.Errorf("trait use should be inside class scope")
	}

	topUse := s.FindNext(classUse+1, stream.NotFound, stream.KindIn(token.KwUse))
	if s.HasEnclosingScope(topUse, token.KwClass) {
		t.Errorf("top-level use should not be inside class scope")
	}
}

func TestStreamTextLossless(t *testing.T) {
	input := "<?php\nfunction f($a) {\n    return [$a, 2];\n}\n"
	s := buildString(t, input)
	if s.Text() != input {
		t.Errorf("Text() does not reproduce input\nwant %q\ngot  %q", input, s.Text())
	}
}

func TestLineColFilled(t *testing.T) {
	s := buildString(t, "<?php\n$a = 1;\n")
	v := findKind(t, s, token.Variable)
	if s.At(v).Line != 2 || s.At(v).Col != 1 {
		t.Errorf("position of $a: got %d:%d, want 2:1", s.At(v).Line, s.At(v).Col)
	}
}
