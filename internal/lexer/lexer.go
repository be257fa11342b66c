package lexer

import (
	"ponyfmt/internal/source"
	"ponyfmt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// EOF тоже несёт Leading: хвостовые комментарии файла живут на нём.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	var tok token.Token
	if lx.cursor.EOF() {
		tok = token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	} else {
		ch := lx.cursor.Peek()
		switch {
		case isIdentStartByte(ch):
			tok = lx.scanIdentOrKeyword()
		case isDec(ch):
			tok = lx.scanNumber()
		case ch == '"':
			tok = lx.scanString()
		case ch == '\'':
			tok = lx.scanChar()
		default:
			tok = lx.scanOperatorOrPunct()
		}
	}

	if len(lx.hold) > 0 {
		tok.Leading = lx.hold
		lx.hold = nil
	}
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the whole file; the last element is always EOF.
func (lx *Lexer) All() []token.Token {
	out := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
