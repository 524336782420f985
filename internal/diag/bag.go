package diag

import (
	"sort"

	"sniff/internal/source"
)

// Bag accumulates violations for one file, bounded by a maximum count.
type Bag struct {
	items []Violation
	max   int
	fs    *source.FileSet
}

// NewBag creates a bag that resolves line/column positions against fs.
// fs may be nil; positions then stay zero until resolved by the caller.
func NewBag(max int, fs *source.FileSet) *Bag {
	return &Bag{
		items: make([]Violation, 0, max),
		max:   max,
		fs:    fs,
	}
}

// Add appends a violation, resolving its line/column. Returns false when
// the bag is full.
func (b *Bag) Add(v Violation) bool {
	if len(b.items) >= b.max {
		return false
	}
	if b.fs != nil && v.Line == 0 {
		start, _ := b.fs.Resolve(v.Primary)
		v.Line = start.Line
		v.Col = start.Col
	}
	b.items = append(b.items, v)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the accumulated violations.
func (b *Bag) Items() []Violation {
	return b.items
}

// HasErrors reports whether any violation has error severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any unfixed violation has warning severity
// or above. Violations already repaired by the fixer do not count.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning && !b.items[i].Fixed {
			return true
		}
	}
	return false
}

// SetFixed marks the violation at index i as fixed by the current pass.
func (b *Bag) SetFixed(i int) {
	if i >= 0 && i < len(b.items) {
		b.items[i].Fixed = true
	}
}

// FixedCount returns the number of violations marked fixed.
func (b *Bag) FixedCount() int {
	n := 0
	for i := range b.items {
		if b.items[i].Fixed {
			n++
		}
	}
	return n
}

// Merge appends all violations from the other bag, growing max as needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders violations by line, column, severity (desc) and code for a
// stable, deterministic report.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		vi, vj := b.items[i], b.items[j]
		if vi.Primary.File != vj.Primary.File {
			return vi.Primary.File < vj.Primary.File
		}
		if vi.Line != vj.Line {
			return vi.Line < vj.Line
		}
		if vi.Col != vj.Col {
			return vi.Col < vj.Col
		}
		if vi.Severity != vj.Severity {
			return vi.Severity > vj.Severity
		}
		return vi.Code < vj.Code
	})
}

// ErrorsByLine maps line number to error count, the shape the fixture
// harness asserts against.
func (b *Bag) ErrorsByLine() map[uint32]int {
	out := make(map[uint32]int)
	for i := range b.items {
		if b.items[i].Severity == SevError {
			out[b.items[i].Line]++
		}
	}
	return out
}

// WarningsByLine maps line number to fixable-warning count.
func (b *Bag) WarningsByLine() map[uint32]int {
	out := make(map[uint32]int)
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			out[b.items[i].Line]++
		}
	}
	return out
}
