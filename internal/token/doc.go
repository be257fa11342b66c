// Package token defines lexical token kinds and trivia for Pony sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments never appear in the token stream; they are
//     attached to the following token as leading Trivia.
//   - Operators with the unsafe '~' suffix (`+~`, `<=~`, ...) keep the kind
//     of the base operator; Text carries the full spelling.
package token
