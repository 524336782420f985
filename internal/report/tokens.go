package report

import (
	"encoding/json"
	"fmt"
	"io"

	"sniff/internal/source"
	"sniff/internal/token"
)

// TokenOutput is one token in JSON token dumps.
type TokenOutput struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Span   source.Span `json:"span"`
	Opener int         `json:"opener,omitempty"`
	Closer int         `json:"closer,omitempty"`
	Parent int         `json:"parent,omitempty"`
	Owner  int         `json:"owner,omitempty"`
}

// FormatTokensPretty dumps tokens one per line with positions and scope
// links.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%4d: %-16s", i, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Closer != token.NoIndex {
			fmt.Fprintf(w, " closer=%d", tok.Closer)
		}
		if tok.Opener != token.NoIndex {
			fmt.Fprintf(w, " opener=%d", tok.Opener)
		}
		if tok.Parent != token.NoIndex {
			fmt.Fprintf(w, " parent=%d", tok.Parent)
		}
		if tok.Owner != token.NoIndex {
			fmt.Fprintf(w, " owner=%d", tok.Owner)
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON dumps tokens as a JSON array. Absent scope links are
// omitted.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if tok.Opener != token.NoIndex {
			out.Opener = tok.Opener
		}
		if tok.Closer != token.NoIndex {
			out.Closer = tok.Closer
		}
		if tok.Parent != token.NoIndex {
			out.Parent = tok.Parent
		}
		if tok.Owner != token.NoIndex {
			out.Owner = tok.Owner
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
