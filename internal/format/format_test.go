package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ponyfmt/internal/lexer"
	"ponyfmt/internal/source"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

func formatString(t *testing.T, src string, opts Options) string {
	t.Helper()
	out, err := Source([]byte(src), opts)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	return string(out)
}

func TestSourceLayouts(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "actor with constructor",
			src:  "actor Main\nnew create(env: Env) =>\nenv.out.print(\"Hi\")\n",
			want: "actor Main\n  new create(env: Env) =>\n    env.out.print(\"Hi\")\n",
		},
		{
			name: "top-level if",
			src:  "if true then\nenv.out.print(\"yes\")\nend",
			want: "if true then\n  env.out.print(\"yes\")\nend\n",
		},
		{
			name: "primitive then class",
			src:  "primitive Red\nclass Foo\n  let x: U32 = 0\n",
			want: "primitive Red\n\nclass Foo\n  let x: U32 = 0\n",
		},
		{
			name: "line comment after body-less primitive",
			src:  "primitive A\n// c\nclass B\n",
			want: "primitive A\n\n// c\nclass B\n",
		},
		{
			name: "block comment after body-less primitive",
			src:  "primitive A\n/* c */\nactor B\n",
			want: "primitive A\n\n/* c */\n\nactor B\n",
		},
		{
			name: "comment at EOF after body-less interface",
			src:  "interface I\n// c\n",
			want: "interface I\n// c\n",
		},
		{
			name: "argument list collapses",
			src:  "foo(\n  a,\n  b ,c\n)",
			want: "foo(a, b, c)\n",
		},
		{
			name: "if without end",
			src:  "if cond then\nbody",
			want: "if cond then\n  body\n",
		},
		{
			name: "use statements",
			src:  "use \"collections\"\nuse   p = \"pkg\" if windows\nactor A",
			want: "use \"collections\"\nuse p = \"pkg\" if windows\n\nactor A\n",
		},
		{
			name: "type alias",
			src:  "type Num is (U8|I32)",
			want: "type Num is (U8 | I32)\n",
		},
		{
			name: "operators and unary minus",
			src:  "x=-a+b*c",
			want: "x = -a + b * c\n",
		},
		{
			name: "short fun stays inline",
			src:  "class A\n  fun f(): U32 =>\n    1\n  fun g(): U32 =>\n    let x = 1\n    x\n",
			want: "class A\n  fun f(): U32 => 1\n  fun g(): U32 =>\n    let x = 1\n    x\n",
		},
		{
			name: "behaviour body always on its own line",
			src:  "actor A\n  be ping() => None",
			want: "actor A\n  be ping() =>\n    None\n",
		},
		{
			name: "partial method",
			src:  "class A\n  fun f(x: U32): U32 ? => x",
			want: "class A\n  fun f(x: U32): U32 ? => x\n",
		},
		{
			name: "match",
			src:  "match x\n| 1 => \"one\"\n| let s: String => s\nelse \"other\" end",
			want: "match x\n| 1 => \"one\"\n| let s: String => s\nelse\n  \"other\"\nend\n",
		},
		{
			name: "while",
			src:  "while i < 3 do foo()? end",
			want: "while i < 3 do\n  foo()?\nend\n",
		},
		{
			name: "try else then",
			src:  "try a() else b then c end",
			want: "try\n  a()\nelse\n  b\nthen\n  c\nend\n",
		},
		{
			name: "inline lambda",
			src:  "let f = {(x: U32): U32 => x + 1}",
			want: "let f = {(x: U32): U32 => x + 1}\n",
		},
		{
			name: "multi-line lambda",
			src:  "let f = {(x: U32) =>\nlet y = x\ny + 1\n}",
			want: "let f = {(x: U32) =>\n  let y = x\n  y + 1\n}\n",
		},
		{
			name: "arrays",
			src:  "let a = [1,2]\nlet b = [\n1\n2\n]",
			want: "let a = [1, 2]\nlet b = [\n  1\n  2\n]\n",
		},
		{
			name: "semicolons keep statements together",
			src:  "fun f() =>\n  a; b\n  c\n",
			want: "fun f() =>\n  a; b\n  c\n",
		},
		{
			name: "comments",
			src:  "// lead\nactor Main // trailing\n  // member doc\n  fun f() => None\n/* tail */\n",
			want: "// lead\nactor Main // trailing\n  // member doc\n  fun f() => None\n\n/* tail */\n",
		},
		{
			name: "stray closers",
			src:  ") end\nactor A",
			want: ")\nend\nactor A\n",
		},
		{
			name: "empty input",
			src:  "",
			want: "\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := formatString(t, tc.src, Options{})
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	got := formatString(t, "class A\n  fun f(): U32 => 1\n", Options{IndentWidth: 4, InlineLimit: 1})
	want := "class A\n    fun f(): U32 =>\n        1\n"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	long := "class A\n  fun f(): String => \"" + strings.Repeat("a", 60) + "\"\n"
	if got := formatString(t, long, Options{}); !strings.Contains(got, "=>\n    \"") {
		t.Fatalf("wide body must move to its own line:\n%s", got)
	}
	for _, m := range []Mode{ModeStdout, ModeWrite, ModeCheck} {
		if got := formatString(t, "x=1", Options{Mode: m}); got != "x = 1\n" {
			t.Fatalf("mode %s changed the text: %q", m, got)
		}
		if back, ok := ParseMode(m.String()); !ok || back != m {
			t.Fatalf("mode %s does not round-trip", m)
		}
	}
}

func TestArgumentsWithCommentsAreNotFlattened(t *testing.T) {
	got := formatString(t, "foo(a, // first\n  b)", Options{})
	if !strings.Contains(got, "// first\n") || !strings.Contains(got, "b)") {
		t.Fatalf("comment inside arguments lost or swallowed code:\n%s", got)
	}
}

func TestFileErrors(t *testing.T) {
	if _, err := File(nil, Options{}); err == nil {
		t.Fatalf("nil file must fail")
	}
	if _, err := Source([]byte("actor\x00"), Options{}); err == nil {
		t.Fatalf("binary input must fail")
	}
}

// leaves lexes src and returns one leaf per token.
func leaves(t *testing.T, src string) ([]*syntax.Node, []byte) {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("tree.pony", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	sf := fs.Get(id)
	var out []*syntax.Node
	for _, tok := range lexer.New(sf, lexer.Options{}).All() {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, syntax.Leaf(tok))
	}
	return out, sf.Content
}

func TestTreeRecovery(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		build func(l []*syntax.Node) *syntax.Node
		want  string
	}{
		{
			name: "stray then and end",
			src:  "x then y end z",
			build: func(l []*syntax.Node) *syntax.Node {
				return syntax.Branch(syntax.SourceFile, syntax.Branch(syntax.Other, l...))
			},
			want: "x then\n  y\nend z\n",
		},
		{
			name: "error conditional with end",
			src:  "if a then b end",
			build: func(l []*syntax.Node) *syntax.Node {
				return syntax.Branch(syntax.SourceFile, syntax.Branch(syntax.Error, l...))
			},
			want: "if a then\n  b\nend\n",
		},
		{
			name: "error verbatim",
			src:  "foo   bar\n   baz",
			build: func(l []*syntax.Node) *syntax.Node {
				return syntax.Branch(syntax.SourceFile, syntax.Branch(syntax.Error, l[0], l[1]), l[2])
			},
			want: "foo   bar\nbaz\n",
		},
		{
			name: "error end dedents",
			src:  "a\nb end",
			build: func(l []*syntax.Node) *syntax.Node {
				body := syntax.Branch(syntax.Block, l[0], syntax.Branch(syntax.Error, l[1], l[2]))
				return syntax.Branch(syntax.Members, syntax.Branch(syntax.Field, body))
			},
			want: "  a\n  b\nend\n",
		},
		{
			name: "unknown kind recurses",
			src:  "a b",
			build: func(l []*syntax.Node) *syntax.Node {
				return &syntax.Node{Kind: syntax.Kind(250), Children: l}
			},
			want: "a b\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, src := leaves(t, tc.src)
			got := string(Tree(src, tc.build(l), Options{}))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterveningContent(t *testing.T) {
	l, src := leaves(t, "a /* one */ b // two\nc")
	// комментарии лежат в trivia, дерево их не покрывает
	root := syntax.Branch(syntax.SourceFile, syntax.Branch(syntax.Other, l...))
	got := string(Tree(src, root, Options{}))
	want := "a /* one */ b // two\nc\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	l, src = leaves(t, "f(x) // tail\n")
	root = syntax.Branch(syntax.SourceFile, syntax.Branch(syntax.Other, l...))
	if got := string(Tree(src, root, Options{})); got != "f(x) // tail\n" {
		t.Fatalf("trailing comment: got %q", got)
	}
}
