package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

// sourceFile lays out top-level items: each starts a line at indent 0,
// some kind pairs are separated by a blank line.
func (p *printer) sourceFile(n *syntax.Node) {
	var prev syntax.Kind
	seen := false
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		p.intervening(int(c.Span.Start))
		p.w.SetIndent(0)
		p.resetCond()
		if p.w.Len() > 0 {
			p.w.RequestNewline(1)
		}
		if seen && blankBetween(prev, c.Kind) {
			p.w.RequestNewline(2)
		}
		p.visit(c, n)
		prev, seen = c.Kind, true
	}
	p.w.SetIndent(0)
}

// blankBetween reports whether consecutive top-level items of kinds prev and cur
// are separated by an empty line.
func blankBetween(prev, cur syntax.Kind) bool {
	comment := cur == syntax.LineComment || cur == syntax.BlockComment
	switch prev {
	case syntax.BlockComment:
		return !comment
	case syntax.ClassDefinition:
		return true
	case syntax.PrimitiveDefinition, syntax.TraitDefinition:
		return cur != prev
	case syntax.TypeAlias, syntax.UseStatement:
		return cur != prev && cur != syntax.LineComment
	case syntax.ActorDefinition, syntax.InterfaceDefinition, syntax.StructDefinition:
		return cur != syntax.LineComment
	}
	return false
}

// members places every member of a type body on its own line one level deeper.
func (p *printer) members(n *syntax.Node) {
	base := p.w.Indent()
	defer p.w.SetIndent(base)
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		p.resetCond()
		p.lineBefore(c, base+1, 1)
		p.visit(c, n)
	}
}

// method renders a constructor, function or behaviour header and its body.
func (p *printer) method(n *syntax.Node) {
	kids := n.Children
	for i, c := range kids {
		if c == nil {
			continue
		}
		switch {
		case c.Kind == syntax.Block && i > 0 && kids[i-1].Is(token.FatArrow):
			p.intervening(int(c.Span.Start))
			p.body(c, n.Kind == syntax.Method)
			p.advance(int(c.Span.End))
		case c.Is(token.Question):
			p.intervening(int(c.Span.Start))
			p.w.RequestSpace()
			p.visit(c, n)
		default:
			p.visit(c, n)
		}
	}
}

// body renders a block following `=>`. Short single-line bodies stay on the arrow's line
// when inline is set; everything else goes one level deeper on the next line.
func (p *printer) body(block *syntax.Node, inline bool) {
	if inline && p.fitsInline(block) {
		p.w.RequestSpace()
		restore := p.w.SingleLine(true)
		defer restore()
		p.sequence(block)
		return
	}
	base := p.w.Indent()
	defer p.w.SetIndent(base)
	p.w.SetIndent(base + 1)
	p.w.RequestNewline(1)
	p.sequence(block)
}

// fitsInline reports whether the source of n is a single line narrower than the inline limit.
func (p *printer) fitsInline(n *syntax.Node) bool {
	text := strings.TrimSpace(n.Text(p.src))
	if strings.Contains(text, "\n") {
		return false
	}
	return runewidth.StringWidth(text) < p.opt.InlineLimit
}

// sequence renders statements one per line; `;` keeps its neighbours together.
func (p *printer) sequence(n *syntax.Node) {
	var prev *syntax.Node
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		p.intervening(int(c.Span.Start))
		if prev != nil && !c.Is(token.Semicolon) && (!prev.Is(token.Semicolon) || isComment(c)) {
			p.w.RequestNewline(1)
		}
		p.visit(c, n)
		prev = c
	}
}

func isComment(n *syntax.Node) bool {
	return n.IsLeaf() && (n.Kind == syntax.LineComment || n.Kind == syntax.BlockComment)
}
