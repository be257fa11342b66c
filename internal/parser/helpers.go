package parser

import (
	"slices"

	"ponyfmt/internal/diag"
	"ponyfmt/internal/source"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekN смотрит на n токенов вперёд; за концом всегда EOF.
func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance съедает текущий токен (EOF не съедается) и возвращает его.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.taken = 0
	}
	return tok
}

// leaf съедает текущий токен и возвращает его лист.
func (p *Parser) leaf() *syntax.Node {
	return syntax.Leaf(p.advance())
}

// eat съедает токен kind, если он следующий.
func (p *Parser) eat(k token.Kind) *syntax.Node {
	if p.at(k) {
		return p.leaf()
	}
	return nil
}

// expect как eat, но с диагностикой при отсутствии.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) *syntax.Node {
	if n := p.eat(k); n != nil {
		return n
	}
	p.err(code, msg)
	return nil
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.peek().Span, msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.errs++
	if p.opts.MaxErrors != 0 && p.errs > p.opts.MaxErrors {
		return
	}
	diag.ReportError(p.opts.Reporter, code, sp, msg)
}

// emptyAt даёт пустой span сразу после уже съеденного текста (для пустых блоков).
// Комментарии, ещё висящие в trivia следующего токена, остаются снаружи:
// они станут листьями следующего соседа.
func (p *Parser) emptyAt() source.Span {
	tok := p.peek()
	var at uint32
	switch {
	case p.taken > 0:
		at = tok.Leading[p.taken-1].Span.End
	case p.pos > 0:
		at = p.toks[p.pos-1].Span.End
	}
	return source.Span{File: tok.Span.File, Start: at, End: at}
}

// withClosers парсит f, пока kinds считаются закрывающими для вложенных блоков.
func (p *Parser) withClosers(kinds []token.Kind, f func() *syntax.Node) *syntax.Node {
	for _, k := range kinds {
		p.closers[k]++
	}
	defer func() {
		for _, k := range kinds {
			p.closers[k]--
		}
	}()
	return f()
}

func (p *Parser) isCloser(k token.Kind) bool {
	return p.closers[k] > 0
}

func isTopLevelStart(k token.Kind) bool {
	switch k {
	case token.KwUse, token.KwType, token.KwActor, token.KwClass, token.KwTrait,
		token.KwInterface, token.KwPrimitive, token.KwStruct:
		return true
	}
	return false
}

func isMethodStart(k token.Kind) bool {
	return k == token.KwFun || k == token.KwNew || k == token.KwBe
}

// atHardStop — граница, которую не пересекает ни одно тело метода.
func (p *Parser) atHardStop() bool {
	k := p.peek().Kind
	return k == token.EOF || isTopLevelStart(k) || isMethodStart(k)
}

// takeComments превращает комментарии, стоящие на отдельной строке перед
// текущим токеном, в листья. Комментарий в конце строки с кодом остаётся trivia.
func (p *Parser) takeComments() []*syntax.Node {
	tok := p.peek()
	var out []*syntax.Node
	for i := p.taken; i < len(tok.Leading); i++ {
		tr := tok.Leading[i]
		if !tr.IsComment() || !p.ownLine(tok, i) {
			continue
		}
		kind := token.LineComment
		if tr.Kind == token.TriviaBlockComment {
			kind = token.BlockComment
		}
		out = append(out, syntax.Leaf(token.Token{Kind: kind, Span: tr.Span, Text: tr.Text}))
		p.taken = i + 1
	}
	return out
}

// ownLine: перед trivia i (до перевода строки) нет кода.
func (p *Parser) ownLine(tok token.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch tok.Leading[j].Kind {
		case token.TriviaNewline:
			return true
		case token.TriviaSpace:
			continue
		default:
			// предыдущий комментарий на той же строке
			return p.ownLine(tok, j)
		}
	}
	return p.pos == 0
}

// junk съедает токены до конца строки (минимум один) и возвращает узел Error.
func (p *Parser) junk(code diag.Code, msg string) *syntax.Node {
	first := p.peek()
	p.report(code, first.Span, msg+" '"+first.Text+"'")
	children := []*syntax.Node{p.leaf()}
	for {
		tok := p.peek()
		if tok.Kind == token.EOF || tok.AtLineStart() || isTopLevelStart(tok.Kind) || isMethodStart(tok.Kind) {
			break
		}
		children = append(children, p.leaf())
	}
	return syntax.Branch(syntax.Error, children...)
}

// block оборачивает элементы в Block; пустой блок получает span текущей позиции.
func (p *Parser) block(items []*syntax.Node) *syntax.Node {
	b := syntax.Branch(syntax.Block, items...)
	if len(b.Children) == 0 {
		b.Span = p.emptyAt()
	}
	return b
}
