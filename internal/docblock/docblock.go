// Package docblock provides the shared analysis helpers rules use to
// relate documentation comments to the code they describe: locating the
// doc block of a declaration, extracting its tags, and reading function
// signatures and file imports.
package docblock

import (
	"strings"

	"sniff/internal/stream"
	"sniff/internal/token"
)

// Tag is one @-annotation inside a doc block. StringIdx points at the
// DocString token carrying the tag's content; Rest preserves the original
// text after the type word, spacing included, so fixes can rewrite the
// type without disturbing the remainder.
type Tag struct {
	Name      string // tag name without the leading '@'
	TagIdx    int    // index of the DocTag token
	StringIdx int    // index of the content DocString, or stream.NotFound
	Type      string // first whitespace-delimited word of the content
	Var       string // "$name" following the type, when present
	Rest      string // original content after the type word
}

// Find walks backward from a declaration token, skipping whitespace,
// newlines and visibility modifiers, and returns the index of the DocOpen
// of the doc block that immediately precedes the declaration, or
// stream.NotFound.
func Find(s *stream.Stream, declIdx int) int {
	skip := stream.KindIn(token.Whitespace, token.Newline,
		token.KwPublic, token.KwPrivate, token.KwProtected,
		token.KwStatic, token.KwAbstract, token.KwFinal)
	i := s.FindPrev(declIdx-1, stream.NotFound, stream.Not(skip))
	if i == stream.NotFound || s.At(i).Kind != token.DocClose {
		return stream.NotFound
	}
	return s.At(i).Opener
}

// Owner walks forward from a doc block's DocClose and returns the index
// of the first code token it documents, or stream.NotFound.
func Owner(s *stream.Stream, docOpen int) int {
	close := s.At(docOpen).Closer
	if close == token.NoIndex {
		return stream.NotFound
	}
	return s.NextCode(close + 1)
}

// Tags extracts every @-annotation between docOpen and its DocClose, in
// source order.
func Tags(s *stream.Stream, docOpen int) []Tag {
	var out []Tag
	for i := docOpen + 1; i < s.Len(); i++ {
		t := s.At(i)
		if t.Kind == token.DocClose || !t.IsDoc() {
			break
		}
		if tag, ok := TagAt(s, i); ok {
			out = append(out, tag)
		}
	}
	return out
}

// TagAt reads the annotation whose DocTag token sits at index i. Returns
// false when i is not a DocTag.
func TagAt(s *stream.Stream, i int) (Tag, bool) {
	t := s.At(i)
	if t.Kind != token.DocTag {
		return Tag{}, false
	}
	tag := Tag{
		Name:      strings.TrimPrefix(t.Text, "@"),
		TagIdx:    i,
		StringIdx: stream.NotFound,
	}
	// Content, if any, is the DocString on the same line.
	for j := i + 1; j < s.Len(); j++ {
		n := s.At(j)
		if n.Kind == token.DocWhitespace && !strings.Contains(n.Text, "\n") {
			continue
		}
		if n.Kind == token.DocString {
			tag.StringIdx = j
			tag.Type, tag.Rest = splitFirstWord(n.Text)
			if v, _ := splitFirstWord(strings.TrimLeft(tag.Rest, " \t")); strings.HasPrefix(v, "$") {
				tag.Var = v
			}
		}
		break
	}
	return tag, true
}

// splitFirstWord returns the leading non-whitespace word and everything
// after it, spacing preserved.
func splitFirstWord(s string) (string, string) {
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

// SplitTypes breaks a union type annotation on '|', preserving case and
// order.
func SplitTypes(t string) []string {
	return strings.Split(t, "|")
}

// JoinTypes is the inverse of SplitTypes.
func JoinTypes(parts []string) string {
	return strings.Join(parts, "|")
}
