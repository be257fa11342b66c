package parser

import (
	"ponyfmt/internal/diag"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

// parseBlock читает последовательность выражений до закрывающего токена
// объемлющей конструкции или до границы метода/типа. Закрывающие токены, которых
// никто не ждёт (лишний end, ')' и т.п.), становятся узлами Error.
func (p *Parser) parseBlock() *syntax.Node {
	var items []*syntax.Node
	for !p.atHardStop() {
		items = append(items, p.takeComments()...)
		tok := p.peek()
		if p.isCloser(tok.Kind) {
			break
		}
		if tok.Kind == token.Semicolon {
			items = append(items, p.leaf())
			continue
		}
		if stmt := p.parseStatement(); stmt != nil {
			items = append(items, stmt)
			continue
		}
		items = append(items, p.junk(diag.SynStrayKeyword, "unexpected"))
	}
	return p.block(items)
}

// bodyUntil парсит блок, для которого closers — ожидаемые завершения.
func (p *Parser) bodyUntil(closers ...token.Kind) *syntax.Node {
	return p.withClosers(closers, p.parseBlock)
}

// cond парсит условие; then/do не даём съесть как часть выражения.
func (p *Parser) cond(closers ...token.Kind) *syntax.Node {
	return p.withClosers(closers, p.parseExpr)
}

// finish добавляет end или превращает всю конструкцию в Error.
func (p *Parser) finish(kind syntax.Kind, what string, kids []*syntax.Node) *syntax.Node {
	if end := p.eat(token.KwEnd); end != nil {
		return syntax.Branch(kind, append(kids, end)...)
	}
	p.err(diag.SynMissingEnd, what+" is missing 'end'")
	return syntax.Branch(syntax.Error, kids...)
}

// if c then a elseif d then b else e end
func (p *Parser) parseIf() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	kids = append(kids, p.cond(token.KwThen))
	if !p.at(token.KwThen) {
		// заголовок без then: всё до then (в пределах строки) — узел Error,
		// тело и end остаются соседями в объемлющем блоке
		p.err(diag.SynMissingThen, "expected 'then'")
		for !p.at(token.KwThen) && !p.atHardStop() && !p.peek().AtLineStart() && !p.isCloser(p.peek().Kind) {
			kids = append(kids, p.leaf())
		}
		kids = append(kids, p.eat(token.KwThen))
		return syntax.Branch(syntax.Error, kids...)
	}
	kids = append(kids, p.leaf())
	kids = append(kids, p.bodyUntil(token.KwElseif, token.KwElse, token.KwEnd))
	for p.at(token.KwElseif) {
		clause := []*syntax.Node{p.leaf(), p.cond(token.KwThen)}
		clause = append(clause, p.expect(token.KwThen, diag.SynMissingThen, "expected 'then' after elseif condition"))
		clause = append(clause, p.bodyUntil(token.KwElseif, token.KwElse, token.KwEnd))
		kids = append(kids, syntax.Branch(syntax.ElseifClause, clause...))
	}
	if p.at(token.KwElse) {
		kids = append(kids, p.elseClause())
	}
	return p.finish(syntax.IfStatement, "if", kids)
}

func (p *Parser) elseClause() *syntax.Node {
	kw := p.leaf()
	return syntax.Branch(syntax.ElseClause, kw, p.bodyUntil(token.KwEnd))
}

// while c do body else alt end
func (p *Parser) parseWhile() *syntax.Node {
	kids := []*syntax.Node{p.leaf(), p.cond(token.KwDo)}
	kids = append(kids, p.expect(token.KwDo, diag.SynMissingDo, "expected 'do' after while condition"))
	kids = append(kids, p.bodyUntil(token.KwElse, token.KwEnd))
	if p.at(token.KwElse) {
		kids = append(kids, p.elseClause())
	}
	return p.finish(syntax.WhileStatement, "while", kids)
}

// for (k, v) in pairs do body end
func (p *Parser) parseFor() *syntax.Node {
	kids := []*syntax.Node{p.leaf(), p.cond(token.KwIn)}
	if in := p.expect(token.KwIn, diag.SynExpectIn, "expected 'in' in for loop"); in != nil {
		kids = append(kids, in, p.cond(token.KwDo))
	}
	kids = append(kids, p.expect(token.KwDo, diag.SynMissingDo, "expected 'do' in for loop"))
	kids = append(kids, p.bodyUntil(token.KwElse, token.KwEnd))
	if p.at(token.KwElse) {
		kids = append(kids, p.elseClause())
	}
	return p.finish(syntax.ForStatement, "for", kids)
}

// with f = File(p), g = File(q) do body end
func (p *Parser) parseWith() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	for !p.at(token.KwDo) && !p.atHardStop() {
		if p.at(token.Comma) {
			kids = append(kids, p.leaf())
			continue
		}
		e := p.cond(token.KwDo)
		if e == nil {
			break
		}
		kids = append(kids, e)
	}
	kids = append(kids, p.expect(token.KwDo, diag.SynMissingDo, "expected 'do' in with block"))
	kids = append(kids, p.bodyUntil(token.KwElse, token.KwEnd))
	if p.at(token.KwElse) {
		kids = append(kids, p.elseClause())
	}
	return p.finish(syntax.WhileStatement, "with", kids)
}

// match x | pattern if guard => body ... else alt end
func (p *Parser) parseMatch() *syntax.Node {
	kids := []*syntax.Node{p.leaf(), p.cond(token.Pipe, token.KwElse, token.KwEnd)}
	for {
		kids = append(kids, p.takeComments()...)
		if !p.at(token.Pipe) {
			break
		}
		kids = append(kids, p.parseCase())
	}
	if p.at(token.KwElse) {
		kids = append(kids, p.elseClause())
	}
	return p.finish(syntax.MatchStatement, "match", kids)
}

func (p *Parser) parseCase() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	if !p.atOr(token.KwIf, token.FatArrow) {
		kids = append(kids, p.cond(token.Pipe, token.FatArrow))
	}
	if p.at(token.KwIf) {
		kids = append(kids, p.leaf(), p.cond(token.Pipe, token.FatArrow))
	}
	if p.at(token.FatArrow) {
		kids = append(kids, p.leaf(), p.bodyUntil(token.Pipe, token.KwElse, token.KwEnd))
	}
	return syntax.Branch(syntax.MatchCase, kids...)
}

// try body else alt then always end
func (p *Parser) parseTry() *syntax.Node {
	kids := []*syntax.Node{p.leaf(), p.bodyUntil(token.KwElse, token.KwThen, token.KwEnd)}
	if p.at(token.KwElse) {
		kw := p.leaf()
		kids = append(kids, syntax.Branch(syntax.ElseClause, kw, p.bodyUntil(token.KwThen, token.KwEnd)))
	}
	if p.at(token.KwThen) {
		kw := p.leaf()
		kids = append(kids, syntax.Branch(syntax.ThenClause, kw, p.bodyUntil(token.KwEnd)))
	}
	return p.finish(syntax.TryStatement, "try", kids)
}

// repeat body until cond else alt end
func (p *Parser) parseRepeat() *syntax.Node {
	kids := []*syntax.Node{p.leaf(), p.bodyUntil(token.KwUntil)}
	if until := p.expect(token.KwUntil, diag.SynExpectUntil, "expected 'until' after repeat body"); until != nil {
		kids = append(kids, until, p.cond(token.KwElse, token.KwEnd))
	}
	if p.at(token.KwElse) {
		kids = append(kids, p.elseClause())
	}
	return p.finish(syntax.RepeatStatement, "repeat", kids)
}

// recover iso body end
func (p *Parser) parseRecover() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	if p.peek().Kind.IsCapability() {
		kids = append(kids, p.leaf())
	}
	kids = append(kids, p.bodyUntil(token.KwEnd))
	return p.finish(syntax.RecoverExpression, "recover", kids)
}
