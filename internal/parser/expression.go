package parser

import (
	"ponyfmt/internal/diag"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

// parseStatement — в Pony любая инструкция является выражением.
func (p *Parser) parseStatement() *syntax.Node {
	return p.parseExpr()
}

// parseExpr: binary ('=' expr)?  — присваивание правоассоциативно.
func (p *Parser) parseExpr() *syntax.Node {
	lhs := p.parseBinary(1)
	if lhs == nil {
		return nil
	}
	if p.at(token.Assign) {
		op := p.leaf()
		rhs := p.parseExpr()
		if rhs == nil {
			p.err(diag.SynExpectExpression, "expected expression after '='")
		}
		return syntax.Branch(syntax.AssignmentExpression, lhs, op, rhs)
	}
	return lhs
}

func (p *Parser) parseBinary(minPrec int) *syntax.Node {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for {
		tok := p.peek()
		if tok.Kind == token.KwAs {
			op := p.leaf()
			left = syntax.Branch(syntax.BinaryExpression, left, op, p.parseType())
			continue
		}
		prec := tok.Kind.Precedence()
		if prec == 0 || prec < minPrec {
			return left
		}
		// '-' в начале строки начинает новое выражение
		if tok.Kind == token.Minus && tok.AtLineStart() {
			return left
		}
		op := p.leaf()
		right := p.parseBinary(prec + 1)
		if right == nil {
			p.err(diag.SynExpectExpression, "expected operand after '"+op.Tok.String()+"'")
		}
		left = syntax.Branch(syntax.BinaryExpression, left, op, right)
	}
}

func (p *Parser) parseUnary() *syntax.Node {
	switch p.peek().Kind {
	case token.Minus, token.KwNot, token.KwAddressof, token.KwDigestof:
		op := p.leaf()
		operand := p.parseUnary()
		if operand == nil {
			p.err(diag.SynExpectExpression, "expected operand")
		}
		return syntax.Branch(syntax.UnaryExpression, op, operand)
	case token.KwConsume:
		kids := []*syntax.Node{p.leaf()}
		if p.peek().Kind.IsCapability() {
			kids = append(kids, p.leaf())
		}
		kids = append(kids, p.parseUnary())
		return syntax.Branch(syntax.ConsumeExpression, kids...)
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() *syntax.Node {
	e := p.parsePrimary()
	if e == nil {
		return nil
	}
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.Dot || tok.Kind == token.Chain || tok.Kind == token.Tilde:
			op := p.leaf()
			name := p.eat(token.Ident)
			if name == nil {
				name = p.eat(token.IntLit) // this.1 не бывает, но не теряем токен
			}
			if name == nil {
				p.err(diag.SynExpectIdentifier, "expected member name")
			}
			e = syntax.Branch(syntax.MemberExpression, e, op, name)
		case tok.Kind == token.LParen && !tok.AtLineStart():
			e = syntax.Branch(syntax.CallExpression, e, p.parseArgs())
		case tok.Kind == token.LBracket && !tok.AtLineStart():
			e = syntax.Branch(syntax.MemberExpression, e, p.parseTypeArgs())
		case tok.Kind == token.Question && !tok.AtLineStart():
			e = syntax.Branch(syntax.CallExpression, e, p.leaf())
		default:
			return e
		}
	}
}

// parseArgs: (a, b where c = 1)
func (p *Parser) parseArgs() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	p.withClosers([]token.Kind{token.RParen}, func() *syntax.Node {
		for !p.at(token.RParen) && !p.atHardStop() {
			switch {
			case p.at(token.Comma) || p.at(token.KwWhere):
				kids = append(kids, p.leaf())
			default:
				if e := p.parseExpr(); e != nil {
					kids = append(kids, e)
					continue
				}
				if p.isCloser(p.peek().Kind) && !p.at(token.RParen) {
					// закрывающий токен внешней конструкции: аргументы не закрыты
					return nil
				}
				p.err(diag.SynUnexpectedToken, "unexpected token in arguments")
				kids = append(kids, p.leaf())
			}
		}
		return nil
	})
	if rp := p.eat(token.RParen); rp != nil {
		kids = append(kids, rp)
	} else {
		p.err(diag.SynUnclosedParen, "unclosed argument list")
	}
	return syntax.Branch(syntax.Arguments, kids...)
}

func (p *Parser) parsePrimary() *syntax.Node {
	switch k := p.peek().Kind; k {
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit, token.CharLit,
		token.KwThis, token.KwTrue, token.KwFalse:
		return p.leaf()
	case token.LParen:
		return p.parseParen()
	case token.LBracket:
		return p.parseArray()
	case token.LBrace:
		return p.parseLambda()
	case token.At:
		at := p.leaf()
		return syntax.Branch(syntax.UnaryExpression, at, p.expect(token.Ident, diag.SynExpectIdentifier, "expected FFI name"))
	case token.KwLet, token.KwVar, token.KwEmbed:
		return p.parseLocal()
	case token.KwReturn, token.KwBreak, token.KwContinue, token.KwError:
		return p.parseJump()
	case token.KwIf, token.KwIfdef:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwWith:
		return p.parseWith()
	case token.KwMatch:
		return p.parseMatch()
	case token.KwTry:
		return p.parseTry()
	case token.KwRepeat:
		return p.parseRepeat()
	case token.KwRecover:
		return p.parseRecover()
	case token.KwObject:
		return p.parseObject()
	}
	return nil
}

// let x: T
func (p *Parser) parseLocal() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	kids = append(kids, p.expect(token.Ident, diag.SynExpectIdentifier, "expected name"))
	if p.at(token.Colon) {
		kids = append(kids, p.leaf(), p.parseType())
	}
	return syntax.Branch(syntax.VariableDeclaration, kids...)
}

// return/break значение берут только с той же строки.
func (p *Parser) parseJump() *syntax.Node {
	kw := p.leaf()
	if kw.Tok == token.KwContinue || kw.Tok == token.KwError {
		return syntax.Branch(syntax.JumpStatement, kw)
	}
	if p.peek().AtLineStart() || p.isCloser(p.peek().Kind) {
		return syntax.Branch(syntax.JumpStatement, kw)
	}
	return syntax.Branch(syntax.JumpStatement, kw, p.parseExpr())
}

// (a), (a, b), пустой кортеж ()
func (p *Parser) parseParen() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	p.withClosers([]token.Kind{token.RParen}, func() *syntax.Node {
		for !p.at(token.RParen) && !p.atHardStop() {
			if p.atOr(token.Comma, token.Semicolon) {
				kids = append(kids, p.leaf())
				continue
			}
			e := p.parseExpr()
			if e == nil {
				if p.isCloser(p.peek().Kind) && !p.at(token.RParen) {
					return nil
				}
				p.err(diag.SynUnexpectedToken, "unexpected token in parentheses")
				e = p.leaf()
			}
			kids = append(kids, e)
		}
		return nil
	})
	if rp := p.eat(token.RParen); rp != nil {
		kids = append(kids, rp)
	} else {
		p.err(diag.SynUnclosedParen, "unclosed parenthesis")
	}
	return syntax.Branch(syntax.ParenExpression, kids...)
}

// [as T: a; b; c] — элементы разделяются ';', ',' или переводом строки.
func (p *Parser) parseArray() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	if p.at(token.KwAs) {
		kids = append(kids, p.leaf(), p.parseType())
		kids = append(kids, p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after array element type"))
	}
	p.withClosers([]token.Kind{token.RBracket}, func() *syntax.Node {
		for !p.at(token.RBracket) && !p.atHardStop() {
			if p.atOr(token.Comma, token.Semicolon) {
				kids = append(kids, p.leaf())
				continue
			}
			e := p.parseExpr()
			if e == nil {
				if p.isCloser(p.peek().Kind) && !p.at(token.RBracket) {
					return nil
				}
				p.err(diag.SynUnexpectedToken, "unexpected token in array literal")
				e = p.leaf()
			}
			kids = append(kids, e)
		}
		return nil
	})
	if rb := p.eat(token.RBracket); rb != nil {
		kids = append(kids, rb)
	} else {
		p.err(diag.SynUnclosedBracket, "unclosed array literal")
	}
	return syntax.Branch(syntax.ArrayLiteral, kids...)
}

// {(a: U32)(env): U32 ? => body} cap
// Заголовок до '=>' хранится листьями; без '=>' это литерал типа.
func (p *Parser) parseLambda() *syntax.Node {
	if !p.lambdaHasArrow() {
		kids := p.balanced(token.LBrace, token.RBrace)
		if p.peek().Kind.IsCapability() {
			kids = append(kids, p.leaf())
		}
		return syntax.Branch(syntax.LambdaExpression, kids...)
	}
	kids := []*syntax.Node{p.leaf()}
	depth := 0
	for !p.at(token.EOF) {
		tok := p.peek()
		if depth == 0 && tok.Kind == token.FatArrow {
			break
		}
		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		}
		kids = append(kids, p.leaf())
	}
	kids = append(kids, p.eat(token.FatArrow))
	body := p.withClosers([]token.Kind{token.RBrace}, p.parseBlock)
	kids = append(kids, body)
	if rb := p.eat(token.RBrace); rb != nil {
		kids = append(kids, rb)
		if p.peek().Kind.IsCapability() {
			kids = append(kids, p.leaf())
		}
	} else {
		p.err(diag.SynUnclosedBrace, "unclosed lambda")
	}
	return syntax.Branch(syntax.LambdaExpression, kids...)
}

// lambdaHasArrow ищет '=>' на нулевой глубине до парной '}'.
func (p *Parser) lambdaHasArrow() bool {
	depth := 0
	for i := p.pos + 1; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket:
			depth--
		case token.RBrace:
			if depth == 0 {
				return false
			}
			depth--
		case token.FatArrow:
			if depth == 0 {
				return true
			}
		case token.EOF:
			return false
		}
	}
	return false
}

// object ref is Trait members end
func (p *Parser) parseObject() *syntax.Node {
	kids := []*syntax.Node{p.leaf()}
	if p.peek().Kind.IsCapability() {
		kids = append(kids, p.leaf())
	}
	if p.at(token.KwIs) {
		kids = append(kids, p.leaf(), p.parseType())
	}
	kids = append(kids, p.withClosers([]token.Kind{token.KwEnd}, p.parseMembers))
	if end := p.eat(token.KwEnd); end != nil {
		return syntax.Branch(syntax.ObjectLiteral, append(kids, end)...)
	}
	p.err(diag.SynMissingEnd, "object literal is missing 'end'")
	return syntax.Branch(syntax.Error, kids...)
}
