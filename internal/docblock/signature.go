package docblock

import (
	"strings"

	"sniff/internal/stream"
	"sniff/internal/token"
)

// Param is one declared function parameter.
type Param struct {
	Name       string // variable name including the '$'
	Type       string // declared type hint, "" when absent
	HasDefault bool
	Idx        int // token index of the Variable token
}

// Signature reads the parameter list of the function declared at fnIdx
// (the function keyword). Returns nil when no parameter list follows.
func Signature(s *stream.Stream, fnIdx int) []Param {
	open := s.FindNext(fnIdx, stream.NotFound, stream.KindIn(token.LParen, token.Semicolon, token.LBrace))
	if open == stream.NotFound || s.At(open).Kind != token.LParen {
		return nil
	}
	close := s.At(open).Closer
	if close == token.NoIndex {
		return nil
	}

	var params []Param
	var cur Param
	var hint []string
	flush := func() {
		if cur.Name == "" {
			return
		}
		cur.Type = strings.Join(hint, "")
		params = append(params, cur)
		cur = Param{}
		hint = nil
	}

	for i := open + 1; i < close; i++ {
		t := s.At(i)
		switch {
		case t.IsOpener() && t.Closer != token.NoIndex:
			// Default values may contain nested groups.
			i = t.Closer
		case t.Kind == token.Comma:
			flush()
		case t.Kind == token.Variable:
			cur.Name = t.Text
			cur.Idx = i
		case t.Kind == token.Assign:
			cur.HasDefault = true
		case cur.Name == "" && (t.Kind == token.Ident || t.Kind == token.NsSep ||
			t.Kind == token.Question || t.Kind == token.KwNull):
			hint = append(hint, t.Text)
		}
	}
	flush()
	return params
}
