package syntax

import (
	"bytes"
	"testing"

	"ponyfmt/internal/source"
	"ponyfmt/internal/token"
)

func leaf(k token.Kind, start, end uint32) *Node {
	return Leaf(token.Token{Kind: k, Span: source.Span{Start: start, End: end}})
}

func TestBranchCoversChildren(t *testing.T) {
	n := Branch(BinaryExpression, leaf(token.Ident, 0, 1), nil, leaf(token.Plus, 2, 3), leaf(token.Ident, 4, 5))
	if len(n.Children) != 3 {
		t.Fatalf("nil children must be dropped, got %d", len(n.Children))
	}
	if n.Span.Start != 0 || n.Span.End != 5 {
		t.Fatalf("span: got %v", n.Span)
	}
	if empty := Branch(Block); !empty.IsLeaf() || !empty.Span.Empty() {
		t.Fatalf("empty branch: %+v", empty)
	}
}

func TestLeafKinds(t *testing.T) {
	if Leaf(token.Token{Kind: token.LineComment}).Kind != LineComment {
		t.Fatalf("line comment leaf kind")
	}
	if Leaf(token.Token{Kind: token.BlockComment}).Kind != BlockComment {
		t.Fatalf("block comment leaf kind")
	}
	l := leaf(token.KwEnd, 0, 3)
	if l.Kind != Token || !l.Is(token.KwEnd) || l.Is(token.KwThen) {
		t.Fatalf("token leaf: %+v", l)
	}
	var nilNode *Node
	if nilNode.Is(token.KwEnd) {
		t.Fatalf("nil node matches nothing")
	}
}

func TestTextClamps(t *testing.T) {
	src := []byte("abc")
	n := &Node{Span: source.Span{Start: 1, End: 10}}
	if got := n.Text(src); got != "bc" {
		t.Fatalf("want %q got %q", "bc", got)
	}
	n = &Node{Span: source.Span{Start: 7, End: 2}}
	if got := n.Text(src); got != "" {
		t.Fatalf("out of range span must give empty text, got %q", got)
	}
}

func TestKindNames(t *testing.T) {
	for k := Other; k < kindCount; k++ {
		if k.String() == "" {
			t.Fatalf("kind %d has no name", k)
		}
	}
	if Kind(250).String() != "other" {
		t.Fatalf("unknown kinds stringify as other")
	}
	if !ClassDefinition.IsTypeDefinition() || TypeAlias.IsTypeDefinition() {
		t.Fatalf("type definition classification")
	}
	if !Behavior.IsMethod() || Field.IsMethod() {
		t.Fatalf("method classification")
	}
}

func TestLeavesAndDump(t *testing.T) {
	src := []byte("a +\nb")
	f := &source.File{Path: "d.pony", Content: src, LineIdx: []uint32{3}}
	root := Branch(SourceFile, Branch(BinaryExpression,
		leaf(token.Ident, 0, 1), leaf(token.Plus, 2, 3), leaf(token.Ident, 4, 5)))
	if got := len(Leaves(root)); got != 3 {
		t.Fatalf("leaves: want 3 got %d", got)
	}
	var buf bytes.Buffer
	if err := Dump(&buf, root, f); err != nil {
		t.Fatal(err)
	}
	want := "source_file@1:1-2:2 'a +\\nb'\n" +
		"  binary_expression@1:1-2:2 'a +\\nb'\n" +
		"    Ident@1:1-1:2 'a'\n" +
		"    +@1:3-1:4 '+'\n" +
		"    Ident@2:1-2:2 'b'\n"
	if buf.String() != want {
		t.Fatalf("dump:\nwant %q\ngot  %q", want, buf.String())
	}
}
