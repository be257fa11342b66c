package fuzztests

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"ponyfmt/internal/diag"
	"ponyfmt/internal/format"
	"ponyfmt/internal/parser"
	"ponyfmt/internal/source"
	"ponyfmt/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input.
// Longer runs point at a loop in error recovery.
const parseTimeout = 5 * time.Second

func FuzzParserTree(f *testing.F) {
	addCorpusSeeds(f)

	// комментарии после типов без тела
	f.Add([]byte("primitive A\n// c\nclass B\n"))
	f.Add([]byte("interface I\n/* c */\n"))
	f.Add([]byte("class C\n  fun f() =>\n  // c\n  fun g() => None\n"))
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		fileID, err := fs.AddVirtual("fuzz.pony", clampInput(input))
		if err != nil {
			t.Skip()
		}
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		res, err := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 128})
		if err != nil {
			if !isInputError(err) {
				t.Fatalf("unexpected parse failure: %v", err)
			}
			return
		}
		// дочерние узлы внутри родителя, соседи по порядку и без перекрытий
		if err := testkit.CheckSpanInvariants(res.Root, file); err != nil {
			t.Fatalf("span invariants: %v", err)
		}
	})
}

// FuzzFormatNoHang feeds the whole pipeline and checks the output contract:
// no hang, exactly one trailing newline and the same bytes on a second run.
func FuzzFormatNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// хвосты восстановления после ошибок
	f.Add([]byte("if cond then\nbody"))
	f.Add([]byte("actor A\nfun f() => ) end end end"))
	f.Add([]byte("(\n  a,\n  b ,c\n)"))
	f.Add([]byte("match x\n| 1 => a\n| let y: U8 => b\nelse c end"))
	f.Add([]byte("class C\n  fun f(): U8 => {(x) => x + 1 }(2)\n"))
	f.Add([]byte("/* open"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		type outcome struct {
			first, second []byte
			err           error
		}
		done := make(chan outcome, 1)
		go func() {
			var o outcome
			o.first, o.err = format.Source(input, format.Options{})
			if o.err == nil {
				o.second, o.err = format.Source(input, format.Options{})
			}
			done <- o
		}()

		var o outcome
		select {
		case o = <-done:
		case <-ctx.Done():
			t.Fatalf("format hang detected: took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
		if o.err != nil {
			if !isInputError(o.err) {
				t.Fatalf("unexpected format failure: %v", o.err)
			}
			return
		}
		if !bytes.HasSuffix(o.first, []byte("\n")) || bytes.HasSuffix(o.first, []byte("\n\n")) {
			t.Fatalf("output must end with exactly one newline: %q", truncateForLog(o.first, 200))
		}
		if !bytes.Equal(o.first, o.second) {
			t.Fatalf("non-deterministic output for %q", truncateForLog(input, 200))
		}
	})
}

func isInputError(err error) bool {
	return errors.Is(err, parser.ErrBinaryInput) || errors.Is(err, parser.ErrInvalidUTF8) || errors.Is(err, parser.ErrTooLarge)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
