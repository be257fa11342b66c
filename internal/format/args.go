package format

import (
	"bytes"
	"strings"

	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

// list renders a parenthesised argument or parameter list on one line:
// each comma-separated item is formatted on its own and the items are joined by ", ".
// Lists carrying content the tree does not model are walked as is.
func (p *printer) list(n *syntax.Node) {
	kids := n.Children
	if len(kids) == 0 || !kids[0].Is(token.LParen) || !p.flattenable(n) {
		p.children(n)
		return
	}
	inner := kids[1:]
	var closing *syntax.Node
	if last := kids[len(kids)-1]; len(kids) > 1 && last.Is(token.RParen) {
		closing = last
		inner = kids[1 : len(kids)-1]
	}
	var items []string
	var group []*syntax.Node
	flushGroup := func() {
		if len(group) > 0 {
			if text := p.renderInline(group); text != "" {
				items = append(items, text)
			}
		}
		group = group[:0]
	}
	for _, c := range inner {
		if c == nil {
			continue
		}
		if c.Is(token.Comma) {
			flushGroup()
			continue
		}
		group = append(group, c)
	}
	flushGroup()

	p.visit(kids[0], n)
	if len(items) > 0 {
		p.w.WriteString(strings.Join(items, ", "))
	}
	// закрывающая скобка идёт через обычный leaf, чтобы сработали правила пробелов
	p.advance(int(n.Span.End))
	if closing != nil {
		p.leaf(closing, n)
	}
}

// renderInline formats nodes with a fresh single-line printer and returns the trimmed text.
func (p *printer) renderInline(nodes []*syntax.Node) string {
	sub := newPrinter(p.src, p.opt)
	sub.lastByte = int(nodes[0].Span.Start)
	sub.w.SingleLine(true)
	for _, c := range nodes {
		sub.visit(c, nil)
	}
	return strings.TrimSpace(string(sub.w.Bytes()))
}

// flattenable reports whether n can be rendered on one line without losing or joining anything.
func (p *printer) flattenable(n *syntax.Node) bool {
	leaves := syntax.Leaves(n)
	for i, l := range leaves {
		if isComment(l) || l.Kind == syntax.Error {
			return false
		}
		if i == 0 {
			continue
		}
		s, e := int(leaves[i-1].Span.End), int(l.Span.Start)
		if s < e && e <= len(p.src) && len(bytes.TrimSpace(p.src[s:e])) > 0 {
			return false
		}
	}
	ok := true
	syntax.Walk(n, func(c *syntax.Node) bool {
		switch c.Kind {
		case syntax.Block:
			// операторы, разделённые только переводом строки, нельзя склеить в одну строку
			var prev *syntax.Node
			for _, s := range c.Children {
				if s == nil {
					continue
				}
				if prev != nil && !s.Is(token.Semicolon) && !prev.Is(token.Semicolon) {
					ok = false
				}
				prev = s
			}
		case syntax.ArrayLiteral:
			kids := c.Children
			for i := arrayElemStart(kids) + 1; i < len(kids); i++ {
				if !kids[i].Is(token.RBracket) && !isSeparator(kids[i]) && !isSeparator(kids[i-1]) {
					ok = false
				}
			}
		case syntax.Error:
			ok = false
		}
		return ok
	})
	return ok
}
