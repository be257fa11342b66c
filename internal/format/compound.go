package format

import (
	"strings"

	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

// compound renders if/while/for/match/try/repeat/recover/object with the header inline,
// bodies one level deeper and the closing keywords back at the construct's indent.
func (p *printer) compound(n *syntax.Node) {
	base := p.w.Indent()
	defer p.w.SetIndent(base)
	p.clause(n, base)
}

func (p *printer) clause(n *syntax.Node, base int) {
	kids := n.Children
	for i, c := range kids {
		if c == nil {
			continue
		}
		afterArrow := i > 0 && kids[i-1].Is(token.FatArrow)
		switch {
		case c.Kind == syntax.Block && afterArrow:
			// тело ветки match: как у fun, в строку или блоком
			p.intervening(int(c.Span.Start))
			p.w.SetIndent(base)
			p.body(c, true)
			p.advance(int(c.Span.End))
		case c.Kind == syntax.Block:
			p.lineBefore(c, base+1, 1)
			p.sequence(c)
			p.advance(int(c.Span.End))
			p.w.SetIndent(base)
		case isClauseKind(c.Kind):
			p.intervening(int(c.Span.Start))
			p.clause(c, base)
			p.advance(int(c.Span.End))
		case isCloser(c, n):
			p.lineBefore(c, base, 1)
			p.visit(c, n)
		case isComment(c):
			p.lineBefore(c, base+1, 1)
			p.visit(c, n)
			p.w.SetIndent(base)
		default:
			p.visit(c, n)
		}
	}
}

func isClauseKind(k syntax.Kind) bool {
	switch k {
	case syntax.ElseifClause, syntax.ElseClause, syntax.ThenClause, syntax.MatchCase:
		return true
	}
	return false
}

// isCloser reports whether c is a keyword that starts its own line at the construct's indent.
func isCloser(c, parent *syntax.Node) bool {
	switch {
	case c.Is(token.KwEnd), c.Is(token.KwElse), c.Is(token.KwElseif), c.Is(token.KwUntil):
		return true
	case c.Is(token.KwThen):
		return parent.Kind == syntax.ThenClause
	case c.Is(token.Pipe):
		return parent.Kind == syntax.MatchCase
	}
	return false
}

// lambda keeps a single-line body inline; a multi-line body goes one level deeper
// and the closing brace returns to the lambda's indent.
func (p *printer) lambda(n *syntax.Node) {
	base := p.w.Indent()
	defer p.w.SetIndent(base)
	kids := n.Children
	multiline := false
	for i, c := range kids {
		if c == nil {
			continue
		}
		switch {
		case c.Kind == syntax.Block && i > 0 && kids[i-1].Is(token.FatArrow):
			text := strings.TrimSpace(c.Text(p.src))
			p.intervening(int(c.Span.Start))
			if strings.Contains(text, "\n") {
				multiline = true
				p.w.SetIndent(base + 1)
				p.w.RequestNewline(1)
				p.sequence(c)
				p.w.SetIndent(base)
			} else {
				p.w.RequestSpace()
				restore := p.w.SingleLine(true)
				p.sequence(c)
				restore()
			}
			p.advance(int(c.Span.End))
		case c.Is(token.RBrace) && multiline:
			p.lineBefore(c, base, 1)
			p.visit(c, n)
		default:
			p.visit(c, n)
		}
	}
}

// array puts elements on separate lines when the source separates them only by newlines.
func (p *printer) array(n *syntax.Node) {
	kids := n.Children
	start := arrayElemStart(kids)
	stop := len(kids)
	if stop > start && kids[stop-1].Is(token.RBracket) {
		stop--
	}
	multiline := false
	for i := start + 1; i < stop; i++ {
		if kids[i] != nil && kids[i-1] != nil && !isSeparator(kids[i]) && !isSeparator(kids[i-1]) {
			multiline = true
			break
		}
	}
	if !multiline {
		p.children(n)
		return
	}
	base := p.w.Indent()
	defer p.w.SetIndent(base)
	for i, c := range kids {
		if c == nil {
			continue
		}
		switch {
		case i >= start && i < stop && !isSeparator(c):
			p.lineBefore(c, base+1, 1)
			p.visit(c, n)
		case i == stop:
			p.lineBefore(c, base, 1)
			p.visit(c, n)
		default:
			p.visit(c, n)
		}
	}
}

// arrayElemStart skips `[` and an optional `as T:` element type.
func arrayElemStart(kids []*syntax.Node) int {
	if len(kids) == 0 || !kids[0].Is(token.LBracket) {
		return 0
	}
	if len(kids) > 1 && kids[1].Is(token.KwAs) {
		for i := 2; i < len(kids); i++ {
			if kids[i].Is(token.Colon) {
				return i + 1
			}
		}
	}
	return 1
}

func isSeparator(n *syntax.Node) bool {
	return n.Is(token.Comma) || n.Is(token.Semicolon)
}

// unary glues symbolic prefix operators to their operand.
func (p *printer) unary(n *syntax.Node) {
	if len(n.Children) == 0 {
		return
	}
	op := n.Children[0]
	if op == nil || !op.IsLeaf() || !op.Kind.IsLeafKind() {
		p.children(n)
		return
	}
	p.intervening(int(op.Span.Start))
	if text := op.Text(p.src); text != "" {
		p.applySpacing(unarySpacing(p.w.LastByte()))
		p.w.WriteString(text)
		switch {
		case op.Tok == token.Minus, op.Tok == token.At:
			p.glue = true
		case spaceAfter(op.Tok):
			p.w.RequestSpace()
		}
	}
	p.advance(int(op.Span.End))
	for _, c := range n.Children[1:] {
		p.visit(c, n)
	}
}
