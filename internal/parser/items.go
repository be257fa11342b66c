package parser

import (
	"ponyfmt/internal/diag"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

// use "collections" | use col = "collections" | use "lib:m" if windows
func (p *Parser) parseUse() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	if p.at(token.Ident) && p.peekN(1).Kind == token.Assign {
		kids = append(kids, p.leaf(), p.leaf())
	}
	kids = append(kids, p.expect(token.StringLit, diag.SynUnexpectedToken, "expected package string after 'use'"))
	if p.at(token.KwIf) {
		kids = append(kids, p.leaf(), p.parseExpr())
	}
	return syntax.Branch(syntax.UseStatement, kids...)
}

// type Name[A] is (A | None)
func (p *Parser) parseTypeAlias() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	kids = append(kids, p.expect(token.Ident, diag.SynExpectIdentifier, "expected type alias name"))
	if p.at(token.LBracket) {
		kids = append(kids, p.parseTypeParams())
	}
	if is := p.expect(token.KwIs, diag.SynUnexpectedToken, "expected 'is' in type alias"); is != nil {
		kids = append(kids, is, p.parseType())
	}
	return syntax.Branch(syntax.TypeAlias, kids...)
}

func typeDefKind(k token.Kind) syntax.Kind {
	switch k {
	case token.KwActor:
		return syntax.ActorDefinition
	case token.KwClass:
		return syntax.ClassDefinition
	case token.KwTrait:
		return syntax.TraitDefinition
	case token.KwInterface:
		return syntax.InterfaceDefinition
	case token.KwPrimitive:
		return syntax.PrimitiveDefinition
	default:
		return syntax.StructDefinition
	}
}

// class val Name[A: Any] is Trait members...
func (p *Parser) parseTypeDef() *syntax.Node {
	kind := typeDefKind(p.peek().Kind)
	kids := []*syntax.Node{p.leaf()}
	if p.peek().Kind.IsCapability() {
		kids = append(kids, p.leaf())
	}
	kids = append(kids, p.expect(token.Ident, diag.SynExpectIdentifier, "expected type name"))
	if p.at(token.LBracket) {
		kids = append(kids, p.parseTypeParams())
	}
	if p.at(token.KwIs) {
		kids = append(kids, p.leaf(), p.parseType())
	}
	kids = append(kids, p.parseMembers())
	return syntax.Branch(kind, kids...)
}

// parseMembers читает поля, методы и комментарии до следующего типа (или до
// закрывающего токена, если тело принадлежит object-литералу).
func (p *Parser) parseMembers() *syntax.Node {
	var items []*syntax.Node
	for {
		tok := p.peek()
		if tok.Kind == token.EOF || isTopLevelStart(tok.Kind) || p.isCloser(tok.Kind) {
			break
		}
		items = append(items, p.takeComments()...)
		switch tok.Kind {
		case token.KwLet, token.KwVar, token.KwEmbed:
			items = append(items, p.parseField())
		case token.KwFun, token.KwNew, token.KwBe:
			items = append(items, p.parseMethod())
		case token.StringLit:
			if len(items) == 0 || allComments(items) {
				items = append(items, syntax.Branch(syntax.Docstring, p.leaf()))
				continue
			}
			items = append(items, p.junk(diag.SynUnexpectedMember, "unexpected member"))
		default:
			items = append(items, p.junk(diag.SynUnexpectedMember, "unexpected member"))
		}
	}
	m := syntax.Branch(syntax.Members, items...)
	if len(m.Children) == 0 {
		m.Span = p.emptyAt()
	}
	return m
}

func allComments(items []*syntax.Node) bool {
	for _, it := range items {
		if it.Kind != syntax.LineComment && it.Kind != syntax.BlockComment {
			return false
		}
	}
	return true
}

// let name: Type = default
func (p *Parser) parseField() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	kids = append(kids, p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name"))
	if p.at(token.Colon) {
		kids = append(kids, p.leaf(), p.parseType())
	}
	if p.at(token.Assign) {
		kids = append(kids, p.leaf(), p.parseExpr())
	}
	return syntax.Branch(syntax.Field, kids...)
}

func methodKind(k token.Kind) syntax.Kind {
	switch k {
	case token.KwNew:
		return syntax.Constructor
	case token.KwBe:
		return syntax.Behavior
	default:
		return syntax.Method
	}
}

// fun ref name[A](a: A): R ? => body
func (p *Parser) parseMethod() *syntax.Node {
	kind := methodKind(p.peek().Kind)
	kids := []*syntax.Node{p.leaf()}
	if p.peek().Kind.IsCapability() || p.at(token.At) {
		kids = append(kids, p.leaf())
	}
	kids = append(kids, p.expect(token.Ident, diag.SynExpectIdentifier, "expected method name"))
	if p.at(token.LBracket) {
		kids = append(kids, p.parseTypeParams())
	}
	if p.at(token.LParen) {
		kids = append(kids, p.parseParams())
	} else {
		p.err(diag.SynUnexpectedToken, "expected parameter list")
	}
	if p.at(token.Colon) {
		kids = append(kids, p.leaf(), p.parseType())
	}
	if p.at(token.Question) {
		kids = append(kids, p.leaf())
	}
	if p.at(token.FatArrow) {
		kids = append(kids, p.leaf(), p.parseBlock())
	}
	return syntax.Branch(kind, kids...)
}

// parseParams: (a: A, b: B = 1)
func (p *Parser) parseParams() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	for !p.at(token.RParen) && !p.atHardStop() {
		switch {
		case p.at(token.Comma):
			kids = append(kids, p.leaf())
		case p.at(token.Ident):
			kids = append(kids, p.parseParam())
		default:
			// мусор внутри скобок съедаем по одному токену
			p.err(diag.SynUnexpectedToken, "unexpected token in parameter list")
			kids = append(kids, p.leaf())
		}
	}
	if rp := p.eat(token.RParen); rp != nil {
		kids = append(kids, rp)
	} else {
		p.err(diag.SynUnclosedParen, "unclosed parameter list")
	}
	return syntax.Branch(syntax.Parameters, kids...)
}

func (p *Parser) parseParam() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	if p.at(token.Colon) {
		kids = append(kids, p.leaf(), p.parseType())
	}
	if p.at(token.Assign) {
		kids = append(kids, p.leaf(), p.parseExpr())
	}
	return syntax.Branch(syntax.Parameter, kids...)
}
