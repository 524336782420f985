// Package fixer is the changeset-based mutation layer over a token stream.
// Rules stage edits inside Begin/EndChangeset pairs; a changeset is applied
// atomically or rejected wholesale when it overlaps edits already accepted
// in the same pass. Accepted edits are rendered into new text, which the
// engine re-tokenizes into a fresh stream for the next pass.
package fixer

import (
	"sort"
	"strings"

	"sniff/internal/source"
	"sniff/internal/stream"
)

// TextEdit is one span-based text operation. OldText, when non-empty, is
// verified against the current content before rendering.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fixer collects edits for one pass over one stream.
type Fixer struct {
	s *stream.Stream

	accepted []TextEdit
	staged   []TextEdit
	open     bool
	applied  int // accepted changesets this pass
	rejected int
}

// New creates a fixer bound to the current pass's stream.
func New(s *stream.Stream) *Fixer {
	return &Fixer{s: s}
}

// Applied returns the number of changesets accepted this pass.
func (f *Fixer) Applied() int {
	return f.applied
}

// Rejected returns the number of changesets dropped due to conflicts.
func (f *Fixer) Rejected() int {
	return f.rejected
}

// BeginChangeset opens an atomic group of edits. Edits staged before
// EndChangeset either all apply or none do.
func (f *Fixer) BeginChangeset() {
	f.staged = f.staged[:0]
	f.open = true
}

// EndChangeset closes the group. It reports whether the changeset was
// accepted; a conflict with previously accepted edits (or within the
// changeset itself) rejects every staged edit.
func (f *Fixer) EndChangeset() bool {
	if !f.open {
		return false
	}
	f.open = false
	if len(f.staged) == 0 {
		return false
	}
	for i, e := range f.staged {
		for _, prev := range f.accepted {
			if spansConflict(prev.Span, e.Span) {
				f.staged = f.staged[:0]
				f.rejected++
				return false
			}
		}
		for _, other := range f.staged[:i] {
			if spansConflict(other.Span, e.Span) {
				f.staged = f.staged[:0]
				f.rejected++
				return false
			}
		}
	}
	f.accepted = append(f.accepted, f.staged...)
	f.staged = f.staged[:0]
	f.applied++
	return true
}

func (f *Fixer) stage(e TextEdit) {
	if !f.open {
		// Edits outside a changeset form a changeset of one.
		f.BeginChangeset()
		f.staged = append(f.staged, e)
		f.EndChangeset()
		return
	}
	f.staged = append(f.staged, e)
}

// ReplaceToken replaces the text of the token at index i.
func (f *Fixer) ReplaceToken(i int, text string) {
	t := f.s.At(i)
	f.stage(TextEdit{Span: t.Span, NewText: text, OldText: t.Text})
}

// DeleteToken removes the token's text entirely.
func (f *Fixer) DeleteToken(i int) {
	f.ReplaceToken(i, "")
}

// AddContentBefore inserts text immediately before the token at index i.
func (f *Fixer) AddContentBefore(i int, text string) {
	t := f.s.At(i)
	f.stage(TextEdit{Span: source.At(t.Span.File, t.Span.Start), NewText: text})
}

// AddNewlineBefore inserts a newline immediately before the token at i.
func (f *Fixer) AddNewlineBefore(i int) {
	f.AddContentBefore(i, "\n")
}

// AddNewline appends a newline immediately after the token at i.
func (f *Fixer) AddNewline(i int) {
	t := f.s.At(i)
	f.stage(TextEdit{Span: source.At(t.Span.File, t.Span.End), NewText: "\n"})
}

// AddContent appends text immediately after the token at i.
func (f *Fixer) AddContent(i int, text string) {
	t := f.s.At(i)
	f.stage(TextEdit{Span: source.At(t.Span.File, t.Span.End), NewText: text})
}

// Render applies every accepted edit to the stream's text and returns the
// rewritten content. With no accepted edits the original text is returned
// unchanged.
func (f *Fixer) Render() string {
	text := f.s.Text()
	if len(f.accepted) == 0 {
		return text
	}

	edits := make([]TextEdit, len(f.accepted))
	copy(edits, f.accepted)
	// Ascending by start; acceptance order breaks ties so inserts at the
	// same offset keep their relative order.
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Span.Start < edits[j].Span.Start
	})

	var b strings.Builder
	b.Grow(len(text))
	pos := uint32(0)
	for _, e := range edits {
		b.WriteString(text[pos:e.Span.Start])
		b.WriteString(e.NewText)
		pos = e.Span.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

// spansConflict reports whether two edits' spans overlap. Spans are
// half-open [Start, End). Two zero-length inserts never conflict; an
// insert conflicts with a replacement when it lands strictly inside or at
// its start.
func spansConflict(a, b source.Span) bool {
	aStart, aEnd := a.Start, a.End
	bStart, bEnd := b.Start, b.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// ReplaceRange replaces all token texts from i through j inclusive.
func (f *Fixer) ReplaceRange(i, j int, text string) {
	ti := f.s.At(i)
	tj := f.s.At(j)
	sp := ti.Span.Cover(tj.Span)
	old := make([]byte, 0, sp.Len())
	for k := i; k <= j; k++ {
		old = append(old, f.s.At(k).Text...)
	}
	f.stage(TextEdit{Span: sp, NewText: text, OldText: string(old)})
}
