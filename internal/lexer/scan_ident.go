package lexer

import (
	"ponyfmt/internal/token"
)

// scanIdentOrKeyword читает [A-Za-z_][A-Za-z0-9_']* и сверяет с таблицей ключевых слов.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}
