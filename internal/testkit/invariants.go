// Package testkit holds assertions shared by the parser and formatter tests.
package testkit

import (
	"fmt"

	"ponyfmt/internal/source"
	"ponyfmt/internal/syntax"
)

// CheckSpanInvariants runs the tree invariants on a parsed file:
// 1) the root span lies within the file content
// 2) every child span is contained in its parent span
// 3) siblings are ordered and do not overlap
// 4) leaves are non-empty and belong to the file
func CheckSpanInvariants(root *syntax.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	if int(root.Span.End) > len(sf.Content) {
		return fmt.Errorf("root span end beyond content: %d > %d", root.Span.End, len(sf.Content))
	}
	return checkNode(root, sf)
}

func checkNode(n *syntax.Node, sf *source.File) error {
	if n.Span.File != sf.ID {
		return fmt.Errorf("%s span %v points to file %d, want %d", n.Kind, n.Span, n.Span.File, sf.ID)
	}
	if n.Span.End < n.Span.Start {
		return fmt.Errorf("%s span is inverted: %v", n.Kind, n.Span)
	}
	if n.IsLeaf() && n.Kind.IsLeafKind() && n.Span.Empty() {
		return fmt.Errorf("empty leaf %s at %v", n.Tok, n.Span)
	}
	var prevEnd uint32
	for i, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%s has nil child #%d", n.Kind, i)
		}
		if !n.Span.Contains(c.Span) {
			return fmt.Errorf("%s span %v does not contain child %s %v", n.Kind, n.Span, c.Kind, c.Span)
		}
		if i > 0 && c.Span.Start < prevEnd {
			return fmt.Errorf("%s child %s %v overlaps previous sibling ending at %d", n.Kind, c.Kind, c.Span, prevEnd)
		}
		prevEnd = c.Span.End
		if err := checkNode(c, sf); err != nil {
			return err
		}
	}
	return nil
}
