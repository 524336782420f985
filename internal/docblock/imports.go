package docblock

import (
	"strings"

	"sniff/internal/stream"
	"sniff/internal/token"
)

// Imports builds the file's use-map: short class name (or alias) to fully
// qualified name without a leading separator. Only top-level use
// statements count; trait usage inside class bodies and closure captures
// are skipped.
func Imports(s *stream.Stream) map[string]string {
	out := make(map[string]string)
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind != token.KwUse {
			continue
		}
		if s.HasEnclosingScope(i, token.LParen, token.KwClass, token.KwInterface, token.KwTrait, token.KwFunction, token.KwFn) {
			continue
		}

		var fqn strings.Builder
		short := ""
		aliased := false
		flush := func() {
			if name := strings.TrimPrefix(fqn.String(), "\\"); name != "" && short != "" {
				out[short] = name
			}
			fqn.Reset()
			short = ""
			aliased = false
		}

	stmt:
		for j := i + 1; j < s.Len(); j++ {
			t := s.At(j)
			switch t.Kind {
			case token.Ident:
				if aliased {
					short = t.Text
					break
				}
				fqn.WriteString(t.Text)
				short = t.Text
			case token.NsSep:
				if !aliased {
					fqn.WriteString(t.Text)
				}
			case token.KwAs:
				aliased = true
			case token.Comma:
				flush()
			case token.Semicolon, token.EOF, token.CloseTag:
				flush()
				i = j
				break stmt
			}
		}
	}
	return out
}
