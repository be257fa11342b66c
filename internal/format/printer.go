package format

import (
	"errors"

	"ponyfmt/internal/parser"
	"ponyfmt/internal/source"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

var errNilFile = errors.New("format: nil source file")

// printer carries the state of one formatting run.
type printer struct {
	src []byte
	opt Options
	w   *Writer

	// lastByte is the end of the source already accounted for; it only grows.
	lastByte int
	cond     condState
	// glue suppresses spacing before the next leaf (operand of a symbolic prefix operator).
	glue bool
}

// condState remembers the indent saved when a malformed conditional was opened.
type condState struct {
	active bool
	base   int
}

// Source parses src and returns its canonical text.
func Source(src []byte, opts Options) ([]byte, error) {
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("<input>", src)
	if err != nil {
		return nil, err
	}
	return File(fs.Get(id), opts)
}

// File parses sf and returns its canonical text.
func File(sf *source.File, opts Options) ([]byte, error) {
	if sf == nil {
		return nil, errNilFile
	}
	res, err := parser.ParseFile(sf, parser.Options{})
	if err != nil {
		return nil, err
	}
	return Tree(sf.Content, res.Root, opts), nil
}

// Tree renders root over src. It accepts any tree shape and never fails.
func Tree(src []byte, root *syntax.Node, opts Options) []byte {
	p := newPrinter(src, opts.WithDefaults())
	p.visit(root, nil)
	p.intervening(len(src))
	return p.w.Finish()
}

func newPrinter(src []byte, opt Options) *printer {
	return &printer{
		src: src,
		opt: opt,
		w:   NewWriter(opt.IndentWidth, len(src)+len(src)/8+1),
	}
}

// visit dispatches on the node kind; unknown kinds recurse into their children.
func (p *printer) visit(n, parent *syntax.Node) {
	if n == nil {
		return
	}
	p.intervening(int(n.Span.Start))
	if n.IsLeaf() && n.Kind.IsLeafKind() {
		p.leaf(n, parent)
		p.advance(int(n.Span.End))
		return
	}
	switch n.Kind {
	case syntax.SourceFile:
		p.sourceFile(n)
	case syntax.Error:
		p.recoverError(n)
	case syntax.Members:
		p.members(n)
	case syntax.Constructor, syntax.Method, syntax.Behavior:
		p.method(n)
	case syntax.Parameters, syntax.Arguments:
		p.list(n)
	case syntax.Block:
		p.sequence(n)
	case syntax.IfStatement, syntax.WhileStatement, syntax.ForStatement, syntax.MatchStatement,
		syntax.TryStatement, syntax.RepeatStatement, syntax.RecoverExpression, syntax.ObjectLiteral:
		p.compound(n)
	case syntax.ElseifClause, syntax.ElseClause, syntax.ThenClause, syntax.MatchCase:
		p.clause(n, p.w.Indent())
	case syntax.LambdaExpression:
		p.lambda(n)
	case syntax.ArrayLiteral:
		p.array(n)
	case syntax.UnaryExpression:
		p.unary(n)
	case syntax.Other, syntax.Token, syntax.LineComment, syntax.BlockComment,
		syntax.UseStatement, syntax.ActorDefinition, syntax.ClassDefinition, syntax.TraitDefinition,
		syntax.InterfaceDefinition, syntax.PrimitiveDefinition, syntax.StructDefinition,
		syntax.TypeAlias, syntax.Docstring, syntax.Field, syntax.Parameter, syntax.TypeParameters,
		syntax.TypeArguments, syntax.BaseType, syntax.UnionType, syntax.TupleType,
		syntax.CallExpression, syntax.MemberExpression, syntax.AssignmentExpression,
		syntax.VariableDeclaration, syntax.BinaryExpression, syntax.ParenExpression,
		syntax.JumpStatement, syntax.ConsumeExpression:
		p.children(n)
	default:
		p.children(n)
	}
	p.advance(int(n.Span.End))
}

func (p *printer) children(n *syntax.Node) {
	for _, c := range n.Children {
		p.visit(c, n)
	}
}

// leaf emits the token text of n with the spacing rules around it.
func (p *printer) leaf(n, parent *syntax.Node) {
	text := n.Text(p.src)
	if text == "" {
		return
	}
	tok := leafToken(n)
	if p.glue {
		p.glue = false
		p.w.CancelSpace()
	} else {
		p.applySpacing(SpacingFor(tok, p.w.LastByte()))
	}
	if tok == token.KwEnd && !closesConstruct(parent) {
		p.closeCond()
	}
	p.w.WriteString(text)
	switch {
	case newlinesAfter(tok) > 0:
		p.w.RequestNewline(newlinesAfter(tok))
	case spaceAfter(tok):
		p.w.RequestSpace()
	}
	if tok == token.KwThen && !opensBody(parent) {
		p.openCond()
	}
}

func leafToken(n *syntax.Node) token.Kind {
	switch n.Kind {
	case syntax.LineComment:
		return token.LineComment
	case syntax.BlockComment:
		return token.BlockComment
	}
	return n.Tok
}

func (p *printer) applySpacing(s Spacing) {
	switch s {
	case SpaceOne:
		p.w.RequestSpace()
	case SpaceNewline:
		p.w.RequestNewline(1)
	}
}

// advance moves lastByte forward to end, clamped to the source.
func (p *printer) advance(end int) {
	end = min(end, len(p.src))
	if end > p.lastByte {
		p.lastByte = end
	}
}

// lineBefore accounts for content in front of c and then asks for n line breaks at level.
func (p *printer) lineBefore(c *syntax.Node, level, n int) {
	p.intervening(int(c.Span.Start))
	p.w.SetIndent(level)
	p.w.RequestNewline(n)
}

// openCond enters the recovery context of a conditional whose structure was lost.
func (p *printer) openCond() {
	if !p.cond.active {
		p.cond = condState{active: true, base: p.w.Indent()}
	}
	p.w.SetIndent(p.w.Indent() + 1)
	p.w.RequestNewline(1)
}

// closeCond leaves the recovery context; it reports whether one was active.
func (p *printer) closeCond() bool {
	if !p.cond.active {
		return false
	}
	p.w.SetIndent(p.cond.base)
	p.cond = condState{}
	return true
}

func (p *printer) resetCond() {
	p.cond = condState{}
}

func closesConstruct(parent *syntax.Node) bool {
	if parent == nil {
		return false
	}
	switch parent.Kind {
	case syntax.IfStatement, syntax.WhileStatement, syntax.ForStatement, syntax.MatchStatement,
		syntax.TryStatement, syntax.RepeatStatement, syntax.RecoverExpression, syntax.ObjectLiteral:
		return true
	}
	return false
}

func opensBody(parent *syntax.Node) bool {
	if parent == nil {
		return false
	}
	switch parent.Kind {
	case syntax.IfStatement, syntax.ElseifClause, syntax.ThenClause:
		return true
	}
	return false
}
