package syntax

import (
	"ponyfmt/internal/source"
	"ponyfmt/internal/token"
)

// Node is an immutable concrete syntax tree node.
// Leaves have no children and carry the token kind in Tok.
type Node struct {
	Kind     Kind
	Tok      token.Kind
	Span     source.Span
	Children []*Node
}

// Leaf builds a leaf node for tok. Comment tokens become comment leaves.
func Leaf(tok token.Token) *Node {
	kind := Token
	switch tok.Kind {
	case token.LineComment:
		kind = LineComment
	case token.BlockComment:
		kind = BlockComment
	}
	return &Node{Kind: kind, Tok: tok.Kind, Span: tok.Span}
}

// Branch builds a node of kind k over the non-nil children.
// Its span covers the children; a branch without children gets an empty span.
func Branch(k Kind, children ...*Node) *Node {
	n := &Node{Kind: k}
	for _, c := range children {
		if c == nil {
			continue
		}
		if len(n.Children) == 0 {
			n.Span = c.Span
		} else {
			n.Span = n.Span.Cover(c.Span)
		}
		n.Children = append(n.Children, c)
	}
	return n
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Is reports whether n is a leaf of token kind k.
func (n *Node) Is(k token.Kind) bool {
	return n != nil && n.IsLeaf() && n.Kind.IsLeafKind() && n.Tok == k
}

// Text returns the source text covered by n, clamped to src.
func (n *Node) Text(src []byte) string {
	s, e := n.Span.Clamp(len(src))
	return string(src[s:e])
}

// First returns the first child of kind k, or nil.
func (n *Node) First(k Kind) *Node {
	for _, c := range n.Children {
		if c != nil && c.Kind == k {
			return c
		}
	}
	return nil
}

// Walk calls fn for n and its descendants in pre-order; returning false skips the subtree.
func Walk(n *Node, fn func(n *Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Leaves returns the leaf nodes of n in source order.
func Leaves(n *Node) []*Node {
	var out []*Node
	Walk(n, func(c *Node) bool {
		if c.IsLeaf() {
			out = append(out, c)
		}
		return true
	})
	return out
}
