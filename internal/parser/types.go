package parser

import (
	"ponyfmt/internal/diag"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

// parseType: atom ('->' atom)*
func (p *Parser) parseType() *syntax.Node {
	t := p.parseTypeAtom()
	if t == nil {
		p.err(diag.SynExpectType, "expected type")
		return nil
	}
	for p.at(token.Arrow) {
		arrow := p.leaf()
		t = syntax.Branch(syntax.BaseType, t, arrow, p.parseTypeAtom())
	}
	return t
}

func (p *Parser) parseTypeAtom() *syntax.Node {
	switch tok := p.peek(); {
	case tok.Kind == token.Ident:
		kids := []*syntax.Node{p.leaf()}
		if p.at(token.Dot) && p.peekN(1).Kind == token.Ident {
			kids = append(kids, p.leaf(), p.leaf())
		}
		if p.at(token.LBracket) {
			kids = append(kids, p.parseTypeArgs())
		}
		if p.peek().Kind.IsCapability() || p.at(token.Hash) && p.peekN(1).Kind == token.Ident {
			if p.at(token.Hash) {
				kids = append(kids, p.leaf())
			}
			kids = append(kids, p.leaf())
		}
		if p.atOr(token.Caret, token.Bang) {
			kids = append(kids, p.leaf())
		}
		return syntax.Branch(syntax.BaseType, kids...)
	case tok.Kind == token.KwThis || tok.Kind.IsCapability():
		return p.leaf()
	case tok.Kind == token.LParen:
		return p.parseGroupType()
	case tok.Kind == token.LBrace:
		return p.parseLambdaType()
	}
	return nil
}

// (A | B), (A & B), (A, B)
func (p *Parser) parseGroupType() *syntax.Node {
	kind := syntax.TupleType
	kids := []*syntax.Node{p.leaf()}
	for !p.at(token.RParen) && !p.atHardStop() {
		switch {
		case p.atOr(token.Pipe, token.Amp):
			kind = syntax.UnionType
			kids = append(kids, p.leaf())
		case p.at(token.Comma):
			kids = append(kids, p.leaf())
		default:
			t := p.parseType()
			if t == nil {
				kids = append(kids, p.leaf())
				continue
			}
			kids = append(kids, t)
		}
	}
	if rp := p.eat(token.RParen); rp != nil {
		kids = append(kids, rp)
	} else {
		p.err(diag.SynUnclosedParen, "unclosed type group")
	}
	return syntax.Branch(kind, kids...)
}

// {(A, B): C} val — разбираем как сбалансированную последовательность листьев.
func (p *Parser) parseLambdaType() *syntax.Node {
	kids := p.balanced(token.LBrace, token.RBrace)
	for p.peek().Kind.IsCapability() || p.atOr(token.Caret, token.Bang) {
		kids = append(kids, p.leaf())
	}
	return syntax.Branch(syntax.BaseType, kids...)
}

// [A, B]
func (p *Parser) parseTypeArgs() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	for !p.at(token.RBracket) && !p.atHardStop() {
		if p.at(token.Comma) {
			kids = append(kids, p.leaf())
			continue
		}
		t := p.parseType()
		if t == nil {
			kids = append(kids, p.leaf())
			continue
		}
		kids = append(kids, t)
	}
	if rb := p.eat(token.RBracket); rb != nil {
		kids = append(kids, rb)
	} else {
		p.err(diag.SynUnclosedBracket, "unclosed type arguments")
	}
	return syntax.Branch(syntax.TypeArguments, kids...)
}

// [A: Any val, B: Stringable = String]
func (p *Parser) parseTypeParams() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	for !p.at(token.RBracket) && !p.atHardStop() {
		switch {
		case p.at(token.Comma):
			kids = append(kids, p.leaf())
		case p.at(token.Ident):
			param := []*syntax.Node{p.leaf()}
			if p.at(token.Colon) {
				param = append(param, p.leaf(), p.parseType())
			}
			if p.at(token.Assign) {
				param = append(param, p.leaf(), p.parseType())
			}
			kids = append(kids, syntax.Branch(syntax.Parameter, param...))
		default:
			p.err(diag.SynUnexpectedToken, "unexpected token in type parameters")
			kids = append(kids, p.leaf())
		}
	}
	if rb := p.eat(token.RBracket); rb != nil {
		kids = append(kids, rb)
	} else {
		p.err(diag.SynUnclosedBracket, "unclosed type parameters")
	}
	return syntax.Branch(syntax.TypeParameters, kids...)
}

// balanced съедает open ... close с учётом вложенности и возвращает листья.
func (p *Parser) balanced(open, close token.Kind) []*syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.peek().Kind {
		case open:
			depth++
		case close:
			depth--
		}
		kids = append(kids, p.leaf())
	}
	if depth > 0 {
		p.err(diag.SynUnclosedBrace, "unclosed "+open.String())
	}
	return kids
}
