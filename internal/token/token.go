package token

import (
	"ponyfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// AtLineStart reports whether a newline separates the token from the previous one.
// The first token of a file counts as being at line start.
func (t Token) AtLineStart() bool {
	if t.Span.Start == 0 {
		return true
	}
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
