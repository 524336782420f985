package fixer_test

import (
	"testing"

	"sniff/internal/fixer"
	"sniff/internal/source"
	"sniff/internal/stream"
	"sniff/internal/token"
)

func buildFixer(t *testing.T, input string) (*stream.Stream, *fixer.Fixer) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(input))
	s, err := stream.Build(fs, id)
	if err != nil {
		t.Fatalf("unexpected build failure: %v", err)
	}
	return s, fixer.New(s)
}

func mustFind(t *testing.T, s *stream.Stream, kind token.Kind, text string) int {
	t.Helper()
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind == kind && (text == "" || s.At(i).Text == text) {
			return i
		}
	}
	t.Fatalf("token %v %q not found", kind, text)
	return -1
}

func TestReplaceToken(t *testing.T) {
	s, f := buildFixer(t, "<?php $old = 1;")
	v := mustFind(t, s, token.Variable, "$old")

	f.ReplaceToken(v, "$new")
	if f.Applied() != 1 {
		t.Fatalf("applied: got %d, want 1", f.Applied())
	}
	if got := f.Render(); got != "<?php $new = 1;" {
		t.Errorf("render: got %q", got)
	}
}

func TestDeleteToken(t *testing.T) {
	s, f := buildFixer(t, "<?php $a  = 1;")
	ws := s.FindNext(mustFind(t, s, token.Variable, "$a"), stream.NotFound, stream.KindIn(token.Whitespace))
	f.DeleteToken(ws)
	if got := f.Render(); got != "<?php $a= 1;" {
		t.Errorf("render: got %q", got)
	}
}

func TestInsertBeforeAndAfter(t *testing.T) {
	s, f := buildFixer(t, "<?php $a;")
	v := mustFind(t, s, token.Variable, "$a")
	f.AddContentBefore(v, "X")
	f.AddContent(v, "Y")
	if got := f.Render(); got != "<?php X$aY;" {
		t.Errorf("render: got %q", got)
	}
}

func TestChangesetAtomicRejection(t *testing.T) {
	s, f := buildFixer(t, "<?php $a = $b;")
	a := mustFind(t, s, token.Variable, "$a")
	b := mustFind(t, s, token.Variable, "$b")

	f.ReplaceToken(a, "$x")

	// A changeset touching an already-edited token plus a fresh one must
	// be rejected wholesale: neither edit may survive.
	f.BeginChangeset()
	f.ReplaceToken(a, "$y")
	f.ReplaceToken(b, "$z")
	if f.EndChangeset() {
		t.Fatal("conflicting changeset was accepted")
	}
	if f.Rejected() != 1 {
		t.Errorf("rejected: got %d, want 1", f.Rejected())
	}
	if got := f.Render(); got != "<?php $x = $b;" {
		t.Errorf("render: got %q", got)
	}
}

func TestChangesetInternalConflict(t *testing.T) {
	s, f := buildFixer(t, "<?php $a;")
	a := mustFind(t, s, token.Variable, "$a")

	f.BeginChangeset()
	f.ReplaceToken(a, "$x")
	f.ReplaceToken(a, "$y")
	if f.EndChangeset() {
		t.Fatal("self-conflicting changeset was accepted")
	}
	if got := f.Render(); got != "<?php $a;" {
		t.Errorf("render: got %q", got)
	}
}

func TestEmptyChangesetNotCounted(t *testing.T) {
	_, f := buildFixer(t, "<?php $a;")
	f.BeginChangeset()
	if f.EndChangeset() {
		t.Error("empty changeset reported accepted")
	}
	if f.Applied() != 0 {
		t.Errorf("applied: got %d, want 0", f.Applied())
	}
}

func TestMultiEditChangeset(t *testing.T) {
	s, f := buildFixer(t, "<?php $a = $b;")
	a := mustFind(t, s, token.Variable, "$a")
	b := mustFind(t, s, token.Variable, "$b")

	f.BeginChangeset()
	f.ReplaceToken(a, "$x")
	f.ReplaceToken(b, "$y")
	if !f.EndChangeset() {
		t.Fatal("disjoint changeset rejected")
	}
	if got := f.Render(); got != "<?php $x = $y;" {
		t.Errorf("render: got %q", got)
	}
}

func TestReplaceRange(t *testing.T) {
	s, f := buildFixer(t, "<?php use A;\n\n\nuse B;")
	firstSemi := mustFind(t, s, token.Semicolon, "")
	secondUse := s.FindNext(firstSemi, stream.NotFound, stream.KindIn(token.KwUse))
	f.ReplaceRange(firstSemi+1, secondUse-1, "\n")
	if got := f.Render(); got != "<?php use A;\nuse B;" {
		t.Errorf("render: got %q", got)
	}
}

func TestTwoInsertsAtSameOffsetKeepOrder(t *testing.T) {
	s, f := buildFixer(t, "<?php $a;")
	v := mustFind(t, s, token.Variable, "$a")
	f.AddContentBefore(v, "1")
	f.AddContentBefore(v, "2")
	if got := f.Render(); got != "<?php 12$a;" {
		t.Errorf("render: got %q", got)
	}
}

func TestRenderWithoutEditsIsIdentity(t *testing.T) {
	input := "<?php\n/** @var int $x */\n$x = 1;\n"
	_, f := buildFixer(t, input)
	if got := f.Render(); got != input {
		t.Errorf("render: got %q", got)
	}
}
