package format

import "testing"

func TestWriterPendingWhitespace(t *testing.T) {
	w := NewWriter(2, 0)
	w.WriteString("a")
	w.RequestNewline(1)
	w.RequestSpace()
	w.WriteString("b")
	w.RequestNewline(5)
	w.WriteString("c")
	w.RequestSpace()
	w.RequestSpace()
	w.WriteString("d")
	if got, want := string(w.Bytes()), "a\nb\n\nc d"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestWriterIndentAndTrim(t *testing.T) {
	w := NewWriter(4, 0)
	w.SetIndent(1)
	w.WriteString("x")
	w.RequestSpace()
	w.WriteString(" ")
	w.RequestNewline(1)
	w.SetIndent(-3)
	w.WriteString("y")
	if got, want := string(w.Bytes()), "    x\ny"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestWriterSingleLine(t *testing.T) {
	w := NewWriter(2, 0)
	restore := w.SingleLine(true)
	w.WriteString("a")
	w.RequestNewline(2)
	w.WriteString("b")
	w.ForceNewline(1)
	w.WriteString("c")
	restore()
	w.RequestNewline(1)
	w.WriteString("d")
	if got, want := string(w.Bytes()), "a b\nc\nd"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestWriterNoLeadingWhitespace(t *testing.T) {
	w := NewWriter(2, 0)
	w.RequestNewline(2)
	w.RequestSpace()
	w.WriteString("a")
	if got := string(w.Finish()); got != "a\n" {
		t.Fatalf("want %q got %q", "a\n", got)
	}
}

func TestWriterFinish(t *testing.T) {
	cases := map[string]string{
		"":          "\n",
		"x":         "x\n",
		"x  \n\n\n": "x\n",
	}
	for in, want := range cases {
		w := NewWriter(2, 0)
		w.WriteString(in)
		w.RequestNewline(2)
		if got := string(w.Finish()); got != want {
			t.Fatalf("%q: want %q got %q", in, want, got)
		}
	}
}
