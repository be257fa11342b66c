package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ponyfmt/internal/diag"
	"ponyfmt/internal/source"
)

func sample(t *testing.T) (*diag.Bag, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("/home/user/project/src/main.pony", []byte("actor Main\nlet x = \"unterminated\n"))
	if err != nil {
		t.Fatal(err)
	}
	sf := fs.Get(id)
	bag := diag.NewBag(10)
	start := uint32(strings.Index(string(sf.Content), "\"unterminated"))
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Primary:  source.Span{File: id, Start: start, End: start + 4},
	})
	return bag, sf
}

func TestPretty(t *testing.T) {
	bag, sf := sample(t)
	cases := []struct {
		mode PathMode
		want string
	}{
		{PathModeAsIs, "/home/user/project/src/main.pony:2:9: ERROR LEX1002: unterminated string literal\n"},
		{PathModeBasename, "main.pony:2:9: ERROR LEX1002"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		Pretty(&buf, bag, sf, PrettyOpts{Context: 1, PathMode: tc.mode})
		out := buf.String()
		if !strings.Contains(out, tc.want) {
			t.Fatalf("want %q in:\n%s", tc.want, out)
		}
		if !strings.Contains(out, "1 | actor Main\n") || !strings.Contains(out, "  |         ^~~~\n") {
			t.Fatalf("missing context or underline:\n%s", out)
		}
		if strings.Contains(out, "\x1b[") {
			t.Fatalf("color disabled but escape codes present")
		}
	}
	var colored bytes.Buffer
	Pretty(&colored, bag, sf, PrettyOpts{Color: true})
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("color enabled but no escape codes:\n%s", colored.String())
	}
}

func TestJSON(t *testing.T) {
	bag, sf := sample(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, sf); err != nil {
		t.Fatal(err)
	}
	var got DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Count != 1 || got.Diagnostics[0].Code != "LEX1002" || got.Diagnostics[0].Location.StartLine != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	buf.Reset()
	if err := JSON(&buf, nil, nil); err != nil || !strings.Contains(buf.String(), `"diagnostics": []`) {
		t.Fatalf("empty bag: %q, %v", buf.String(), err)
	}
}
