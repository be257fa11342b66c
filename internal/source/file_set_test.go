package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1, err := fs.Add("main.pony", []byte("actor Main"), 0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id2, err := fs.Add("main.pony", []byte("actor Other"), 0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("./main.pony")
	if !ok || latest != id2 {
		t.Fatalf("latest: want %d got %d (ok=%v)", id2, latest, ok)
	}
	if got := string(fs.Get(id1).Content); got != "actor Main" {
		t.Fatalf("old version lost: %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Fatalf("expected nil for unknown id")
	}
	if fs.Len() != 2 {
		t.Fatalf("len: want 2 got %d", fs.Len())
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.pony")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("actor Main\r\n  new create() =>\r\n    None\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if want := "actor Main\n  new create() =>\n    None\n"; string(f.Content) != want {
		t.Fatalf("content: want %q got %q", want, f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags not set: %b", f.Flags)
	}
	if len(f.LineIdx) != 3 {
		t.Fatalf("line index: want 3 entries got %v", f.LineIdx)
	}
}

func TestNormalizeKeepsLoneCR(t *testing.T) {
	got, flags := Normalize([]byte("a\rb"))
	if string(got) != "a\rb" || flags != 0 {
		t.Fatalf("want untouched content, got %q flags=%b", got, flags)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id, err := fs.AddVirtual("v.pony", []byte("ab\ncd\n\nef"))
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("virtual flag missing")
	}

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // сам '\n' относится к первой строке
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
		{100, LineCol{4, 3}}, // за концом файла
	}
	for _, tc := range cases {
		start, _ := f.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start != tc.want {
			t.Errorf("offset %d: want %+v got %+v", tc.off, tc.want, start)
		}
	}
}

func TestSpanHelpers(t *testing.T) {
	a := Span{Start: 4, End: 8}
	b := Span{Start: 2, End: 6}
	if got := a.Cover(b); got.Start != 2 || got.End != 8 {
		t.Fatalf("cover: got %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Fatalf("cover must contain its inputs")
	}
	if other := (Span{File: 1, Start: 0, End: 1}); a.Cover(other) != a {
		t.Fatalf("spans of different files must not merge")
	}
	s, e := Span{Start: 5, End: 50}.Clamp(10)
	if s != 5 || e != 10 {
		t.Fatalf("clamp: got %d-%d", s, e)
	}
	s, e = Span{Start: 9, End: 3}.Clamp(10)
	if s != 9 || e != 9 {
		t.Fatalf("clamp inverted: got %d-%d", s, e)
	}
	if (Span{Start: 3, End: 1}).Len() != 0 {
		t.Fatalf("inverted span must have zero length")
	}
}

func TestFileText(t *testing.T) {
	f := &File{Content: []byte("hello")}
	if got := f.Text(Span{Start: 1, End: 99}); got != "ello" {
		t.Fatalf("text: got %q", got)
	}
}
