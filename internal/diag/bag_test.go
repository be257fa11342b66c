package diag

import (
	"strings"
	"testing"

	"ponyfmt/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	r.Report(SynMissingEnd, SevWarning, source.Span{Start: 5, End: 6}, "w")
	if b.HasErrors() {
		t.Fatalf("warning must not count as error")
	}
	ReportError(r, SynUnexpectedToken, source.Span{Start: 1, End: 2}, "e")
	ReportError(r, SynUnexpectedToken, source.Span{Start: 9, End: 10}, "dropped")
	if b.Len() != 2 {
		t.Fatalf("limit: want 2 got %d", b.Len())
	}
	if !b.HasErrors() {
		t.Fatalf("expected errors")
	}
	b.Sort()
	if got := b.Items()[0].Message; got != "e" {
		t.Fatalf("sort by position: want %q first, got %q", "e", got)
	}
}

func TestUnlimitedBag(t *testing.T) {
	b := NewBag(0)
	for i := 0; i < 100; i++ {
		b.Add(Diagnostic{Code: LexUnknownChar})
	}
	if b.Len() != 100 {
		t.Fatalf("want 100 got %d", b.Len())
	}
	ReportError(nil, LexUnknownChar, source.Span{}, "nil reporter is allowed")
	NopReporter{}.Report(LexUnknownChar, SevError, source.Span{}, "x")
}

func TestSeverityFilter(t *testing.T) {
	for _, sev := range []Severity{SevInfo, SevWarning, SevError} {
		got, err := ParseSeverity(strings.ToLower(sev.String()))
		if err != nil || got != sev {
			t.Fatalf("ParseSeverity(%q): got %v, %v", sev, got, err)
		}
	}
	if got, err := ParseSeverity(" Warn "); err != nil || got != SevWarning {
		t.Fatalf("warn alias: got %v, %v", got, err)
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
	if got := Severity(9).String(); got != "UNKNOWN" {
		t.Fatalf("out of range severity: %q", got)
	}

	b := NewBag(0)
	r := BagReporter{Bag: b}
	r.Report(LexUnknownChar, SevInfo, source.Span{}, "i")
	r.Report(SynMissingEnd, SevWarning, source.Span{}, "w")
	ReportError(r, SynUnexpectedToken, source.Span{}, "e")
	if got := b.AtLeast(SevWarning); got.Len() != 2 || got.Items()[0].Message != "w" {
		t.Fatalf("AtLeast(warning): %v", got.Items())
	}
	if got := b.AtLeast(SevError); got.Len() != 1 || !got.HasErrors() {
		t.Fatalf("AtLeast(error): %v", got.Items())
	}
	if b.Len() != 3 {
		t.Fatalf("filtering must not change the source bag")
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar: "LEX1001",
		SynMissingEnd:  "SYN2005",
		UnknownCode:    "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Fatalf("%d: want %q got %q", code, want, got)
		}
	}
	if SynMissingEnd.Title() != "Missing 'end'" {
		t.Fatalf("title: %q", SynMissingEnd.Title())
	}
}

func TestDiagnosticFormat(t *testing.T) {
	f := &source.File{Path: "a.pony", Content: []byte("x\nyz"), LineIdx: []uint32{1}}
	d := Diagnostic{Severity: SevError, Code: SynMissingEnd, Message: "missing end", Primary: source.Span{Start: 3, End: 4}}
	got := d.Format(f)
	if want := "a.pony:2:2: ERROR SYN2005: missing end"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	if !strings.Contains(d.Format(nil), "SYN2005") {
		t.Fatalf("nil file format lost the code")
	}
}
