package lexer

import (
	"ponyfmt/internal/diag"
	"ponyfmt/internal/token"
)

// Жадность: сначала 2-символьные, затем 1-символьные.
// Арифметика и сравнения могут нести суффикс '~' (unsafe-операторы).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	kind := token.Invalid
	switch {
	case lx.cursor.EatSeq("=>"):
		kind = token.FatArrow
	case lx.cursor.EatSeq("->"):
		kind = token.Arrow
	case lx.cursor.EatSeq(".>"):
		kind = token.Chain
	case lx.cursor.EatSeq("=="):
		kind = token.EqEq
	case lx.cursor.EatSeq("!="):
		kind = token.BangEq
	case lx.cursor.EatSeq("<="):
		kind = token.LtEq
	case lx.cursor.EatSeq(">="):
		kind = token.GtEq
	case lx.cursor.EatSeq("<<"):
		kind = token.Shl
	case lx.cursor.EatSeq(">>"):
		kind = token.Shr
	case lx.cursor.EatSeq("%%"):
		kind = token.PercentPercent
	}

	if kind == token.Invalid {
		kind = singleByteKind(lx.cursor.Peek())
		if kind == token.Invalid {
			lx.bumpRune()
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+tok.Text)
			return tok
		}
		lx.cursor.Bump()
	}

	if takesUnsafeSuffix(kind) && lx.cursor.Peek() == '~' {
		lx.cursor.Bump()
	}
	return lx.emit(kind, start)
}

func singleByteKind(b byte) token.Kind {
	switch b {
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	case '[':
		return token.LBracket
	case ']':
		return token.RBracket
	case '{':
		return token.LBrace
	case '}':
		return token.RBrace
	case ',':
		return token.Comma
	case ';':
		return token.Semicolon
	case ':':
		return token.Colon
	case '.':
		return token.Dot
	case '=':
		return token.Assign
	case '+':
		return token.Plus
	case '-':
		return token.Minus
	case '*':
		return token.Star
	case '/':
		return token.Slash
	case '%':
		return token.Percent
	case '<':
		return token.Lt
	case '>':
		return token.Gt
	case '!':
		return token.Bang
	case '|':
		return token.Pipe
	case '&':
		return token.Amp
	case '^':
		return token.Caret
	case '?':
		return token.Question
	case '@':
		return token.At
	case '~':
		return token.Tilde
	case '#':
		return token.Hash
	case '\\':
		return token.Backslash
	}
	return token.Invalid
}

func takesUnsafeSuffix(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.PercentPercent,
		token.Shl, token.Shr, token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return true
	}
	return false
}
