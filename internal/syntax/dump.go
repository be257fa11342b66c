package syntax

import (
	"fmt"
	"io"
	"strings"

	"ponyfmt/internal/source"
)

// Dump writes one line per node: indentation, kind@row:col-row:col and the
// node text with newlines escaped. Rows and columns are 1-based.
func Dump(w io.Writer, root *Node, file *source.File) error {
	if root == nil {
		return nil
	}
	return dumpNode(w, root, file, 0)
}

func dumpNode(w io.Writer, n *Node, file *source.File, level int) error {
	start, end := file.Resolve(n.Span)
	label := n.Kind.String()
	if n.Kind == Token {
		label = n.Tok.String()
	}
	text := strings.ReplaceAll(file.Text(n.Span), "\n", `\n`)
	if _, err := fmt.Fprintf(w, "%s%s@%d:%d-%d:%d '%s'\n",
		strings.Repeat("  ", level), label, start.Line, start.Col, end.Line, end.Col, text); err != nil {
		return err
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if err := dumpNode(w, c, file, level+1); err != nil {
			return err
		}
	}
	return nil
}
