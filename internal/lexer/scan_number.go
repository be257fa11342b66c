package lexer

import (
	"ponyfmt/internal/diag"
	"ponyfmt/internal/token"
)

// Поддержка: 123, 1_000, 0x1F, 0b1010, 1.5, 1e10, 2.5e-3.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			return lx.scanRadix(start, isHex)
		case 'b', 'B':
			return lx.scanRadix(start, func(b byte) bool { return b == '0' || b == '1' })
		}
	}

	kind := token.IntLit
	lx.eatDigits()
	// дробная часть: точка должна быть сразу перед цифрой, иначе это доступ к члену (1.string())
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDigits()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.FloatLit
			lx.eatDigits()
		} else {
			lx.cursor.Reset(mark)
		}
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanRadix(start Mark, digit func(byte) bool) token.Token {
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // x | b
	n := 0
	for b := lx.cursor.Peek(); digit(b) || b == '_'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
		n++
	}
	tok := lx.emit(token.IntLit, start)
	if n == 0 {
		lx.errLex(diag.LexBadNumber, tok.Span, "expected digits after radix prefix")
	}
	return tok
}
