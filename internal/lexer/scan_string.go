package lexer

import (
	"ponyfmt/internal/diag"
	"ponyfmt/internal/token"
)

// scanString читает "..." с escape-последовательностями и """...""" (docstring, без escape).
// Обычные строки в Pony могут содержать перевод строки.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.EatSeq(`"""`) {
		for !lx.cursor.EOF() {
			if lx.cursor.EatSeq(`"""`) {
				// закрывающих кавычек может быть больше трёх: """"a""""
				for lx.cursor.Peek() == '"' {
					lx.cursor.Bump()
				}
				return lx.emit(token.StringLit, start)
			}
			lx.cursor.Bump()
		}
		tok := lx.emit(token.StringLit, start)
		lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated triple-quoted string")
		return tok
	}

	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			lx.bumpRune()
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.StringLit, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanChar читает 'a', '\n', '\x41' и многобайтовые 'ab' (Pony допускает).
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			return lx.emit(token.CharLit, start)
		case '\\':
			lx.cursor.Bump()
			lx.bumpRune()
		case '\n':
			tok := lx.emit(token.CharLit, start)
			lx.errLex(diag.LexUnterminatedChar, tok.Span, "newline in character literal")
			return tok
		default:
			lx.bumpRune()
		}
	}
	tok := lx.emit(token.CharLit, start)
	lx.errLex(diag.LexUnterminatedChar, tok.Span, "unterminated character literal")
	return tok
}
