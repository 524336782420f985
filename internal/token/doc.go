// Package token defines the lexical token kinds for the sniff engine.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Every input byte belongs to exactly one token, including whitespace
//     and comments; concatenating all token texts reproduces the source.
//   - Doc-comments are split into Doc* sub-tokens so rules can address
//     individual tags without re-parsing comment text.
//   - Scope links (Opener/Closer/Parent/Owner) are token indices assigned
//     by the stream builder; they are only valid within one pass.
package token
