package diag_test

import (
	"strings"
	"testing"

	"sniff/internal/diag"
	"sniff/internal/source"
)

func span(fs *source.FileSet, id source.FileID, start, end uint32) source.Span {
	return source.Span{File: id, Start: start, End: end}
}

func TestBagResolvesPositions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n$a = 1;\n"))

	bag := diag.NewBag(10, fs)
	bag.Add(diag.NewError(diag.RuleParamMatch, span(fs, id, 6, 8), "mismatch"))

	v := bag.Items()[0]
	if v.Line != 2 || v.Col != 1 {
		t.Errorf("resolved position: got %d:%d, want 2:1", v.Line, v.Col)
	}
}

func TestBagMaxBounds(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n"))

	bag := diag.NewBag(2, fs)
	for i := 0; i < 5; i++ {
		bag.Add(diag.NewWarning(diag.RuleTypeOrder, span(fs, id, 0, 1), "w"))
	}
	if bag.Len() != 2 {
		t.Errorf("len: got %d, want 2", bag.Len())
	}
}

func TestBagSort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n$a;\n$b;\n"))

	bag := diag.NewBag(10, fs)
	bag.Add(diag.NewWarning(diag.RuleSingleUse, span(fs, id, 10, 12), "second line"))
	bag.Add(diag.NewError(diag.RuleParamMatch, span(fs, id, 6, 8), "first line"))

	bag.Sort()

	if bag.Items()[0].Message != "first line" {
		t.Errorf("sort: first item is %q", bag.Items()[0].Message)
	}
}

func TestBagMergeGrowsPastMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n"))

	a := diag.NewBag(1, fs)
	a.Add(diag.NewWarning(diag.RuleTypeOrder, span(fs, id, 0, 1), "kept"))
	b := diag.NewBag(1, fs)
	b.Add(diag.NewWarning(diag.RuleSingleUse, span(fs, id, 0, 1), "merged"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("merged len: got %d, want 2", a.Len())
	}
	if a.Items()[1].Message != "merged" {
		t.Errorf("merged item: got %q", a.Items()[1].Message)
	}
}

func TestHasWarningsSkipsFixed(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n"))

	bag := diag.NewBag(10, fs)
	bag.Add(diag.NewWarning(diag.RuleTypeOrder, span(fs, id, 0, 1), "w"))
	bag.SetFixed(0)
	if bag.HasWarnings() {
		t.Errorf("fixed warning still counts as outstanding")
	}
	bag.Add(diag.NewWarning(diag.RuleSingleUse, span(fs, id, 0, 1), "w2"))
	if !bag.HasWarnings() {
		t.Errorf("unfixed warning not seen")
	}
}

func TestCountsByLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n$a;\n$b;\n"))

	bag := diag.NewBag(10, fs)
	bag.Add(diag.NewError(diag.RuleParamMatch, span(fs, id, 6, 8), "e1"))
	bag.Add(diag.NewError(diag.RuleDuplicateType, span(fs, id, 6, 8), "e2"))
	bag.Add(diag.NewWarning(diag.RuleTypeOrder, span(fs, id, 10, 12), "w1"))

	errs := bag.ErrorsByLine()
	if errs[2] != 2 || len(errs) != 1 {
		t.Errorf("errors by line: got %v", errs)
	}
	warns := bag.WarningsByLine()
	if warns[3] != 1 || len(warns) != 1 {
		t.Errorf("warnings by line: got %v", warns)
	}
}

func TestSetFixed(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n"))

	bag := diag.NewBag(10, fs)
	bag.Add(diag.NewWarning(diag.RuleTypeOrder, span(fs, id, 0, 1), "w"))
	bag.SetFixed(0)
	if !bag.Items()[0].Fixed || bag.FixedCount() != 1 {
		t.Errorf("fixed flag not set")
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code diag.Code
		id   string
	}{
		{diag.LexUnterminatedString, "LEX1002"},
		{diag.StructUnclosedOpener, "STR2002"},
		{diag.EngineNonConvergence, "ENG3001"},
		{diag.RuleTypeOrder, "RULE4001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID(%d): got %q, want %q", tt.code, got, tt.id)
		}
	}
}

func TestFormatShortStable(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n$a;\n"))

	items := []diag.Violation{
		diag.NewWarning(diag.RuleTypeOrder, span(fs, id, 6, 8), "warn"),
		diag.NewError(diag.RuleParamMatch, span(fs, id, 0, 5), "err"),
	}
	out := diag.FormatShort(items, fs)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "RULE4004") || !strings.Contains(lines[1], "RULE4001") {
		t.Errorf("order or codes wrong:\n%s", out)
	}
}

func TestDedupReporter(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\n"))

	bag := diag.NewBag(10, fs)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	v := diag.NewWarning(diag.RuleTypeOrder, span(fs, id, 0, 1), "same")
	rep.Report(v)
	rep.Report(v)
	if bag.Len() != 1 {
		t.Errorf("dedup reporter: got %d items, want 1", bag.Len())
	}
}
