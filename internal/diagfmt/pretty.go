package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ponyfmt/internal/diag"
	"ponyfmt/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой печатает <path>:<line>:<col>: <SEV> <CODE>: <Message>,
// затем строки контекста и подчёркивание ^~~~ по Span.
func Pretty(w io.Writer, bag *diag.Bag, sf *source.File, opts PrettyOpts) {
	if bag == nil {
		return
	}
	bag.Sort()
	paint := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if sf == nil {
			fmt.Fprintf(w, "%s %s: %s\n", paint.severity(d.Severity), d.Code.ID(), d.Message)
			continue
		}
		start, end := sf.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			displayPath(sf.Path, opts.PathMode), start.Line, start.Col,
			paint.severity(d.Severity), paint.code.Sprint(d.Code.ID()), d.Message)
		writeContext(w, sf, start, end, opts, paint)
	}
}

func writeContext(w io.Writer, sf *source.File, start, end source.LineCol, opts PrettyOpts, paint palette) {
	lines := strings.Split(string(sf.Content), "\n")
	line := int(start.Line)
	if line < 1 || line > len(lines) {
		return
	}
	ctx := max(int(opts.Context), 0)
	first, last := max(line-ctx, 1), min(line+ctx, len(lines))
	gutter := len(fmt.Sprint(last))
	for n := first; n <= last; n++ {
		text := lines[n-1]
		fmt.Fprintf(w, "%*d | %s\n", gutter, n, text)
		if n != line {
			continue
		}
		col := min(int(start.Col)-1, len(text))
		stop := len(text)
		if end.Line == start.Line {
			stop = min(max(int(end.Col)-1, col), len(text))
		}
		pad := runewidth.StringWidth(text[:col])
		width := max(runewidth.StringWidth(text[col:stop]), 1)
		mark := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s | %s%s\n", strings.Repeat(" ", gutter), strings.Repeat(" ", pad), paint.mark.Sprint(mark))
	}
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

type palette struct {
	err, warn, info, code, mark *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan),
		code: color.New(color.Faint),
		mark: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.mark} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return p.err.Sprint(s.String())
	case diag.SevWarning:
		return p.warn.Sprint(s.String())
	}
	return p.info.Sprint(s.String())
}
