package format

// maxPendingNewlines caps deferred newlines: two give one blank line.
const maxPendingNewlines = 2

// Writer accumulates formatted output with deferred whitespace.
// Newline and space requests are resolved right before the next text is written,
// so a later request can still upgrade or cancel an earlier one.
type Writer struct {
	indentWidth int
	buf         []byte
	indentLevel int
	atLineStart bool

	newlines   int
	space      bool
	singleLine bool
}

// NewWriter creates a writer that indents with width spaces per level.
func NewWriter(width, capacity int) *Writer {
	if width <= 0 {
		width = DefaultIndentWidth
	}
	return &Writer{
		indentWidth: width,
		buf:         make([]byte, 0, capacity),
		atLineStart: true,
	}
}

// Bytes returns the text written so far, without pending whitespace.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// LastByte returns the last written byte, or 0 when nothing was written.
func (w *Writer) LastByte() byte {
	if len(w.buf) == 0 {
		return 0
	}
	return w.buf[len(w.buf)-1]
}

// Indent returns the current indentation level.
func (w *Writer) Indent() int {
	return w.indentLevel
}

// SetIndent sets the indentation level, never below zero.
func (w *Writer) SetIndent(level int) {
	w.indentLevel = max(level, 0)
}

// SingleLine switches newline degradation on or off and returns a func restoring the previous mode.
func (w *Writer) SingleLine(on bool) func() {
	prev := w.singleLine
	w.singleLine = on
	return func() { w.singleLine = prev }
}

// RequestNewline asks for n line breaks before the next text.
// In single-line mode it becomes a space request.
func (w *Writer) RequestNewline(n int) {
	if w.singleLine {
		w.RequestSpace()
		return
	}
	w.ForceNewline(n)
}

// ForceNewline asks for n line breaks even in single-line mode.
func (w *Writer) ForceNewline(n int) {
	n = min(n, maxPendingNewlines)
	if n <= 0 {
		return
	}
	w.newlines = max(w.newlines, n)
	w.space = false
}

// RequestSpace asks for one space before the next text; a pending newline wins.
func (w *Writer) RequestSpace() {
	if w.newlines > 0 {
		return
	}
	w.space = true
}

// CancelSpace drops a pending space request.
func (w *Writer) CancelSpace() {
	w.space = false
}

// PendingNewline reports whether a line break is pending.
func (w *Writer) PendingNewline() bool {
	return w.newlines > 0
}

// WriteString resolves pending whitespace, indents a fresh line and appends s.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.flush()
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

func (w *Writer) flush() {
	switch {
	case w.newlines > 0:
		// в начале вывода переводы строк не пишем, только отступ
		if len(w.buf) > 0 {
			w.trimTrailingBlanks()
			have := 0
			for i := len(w.buf) - 1; i >= 0 && w.buf[i] == '\n' && have < maxPendingNewlines; i-- {
				have++
			}
			for ; have < w.newlines; have++ {
				w.buf = append(w.buf, '\n')
			}
			w.atLineStart = true
		}
	case w.space:
		if len(w.buf) > 0 && !w.atLineStart && !isBlank(w.buf[len(w.buf)-1]) {
			w.buf = append(w.buf, ' ')
		}
	}
	w.newlines = 0
	w.space = false
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel * w.indentWidth {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

func (w *Writer) trimTrailingBlanks() {
	end := len(w.buf)
	for end > 0 && (w.buf[end-1] == ' ' || w.buf[end-1] == '\t') {
		end--
	}
	w.buf = w.buf[:end]
}

// Finish drops pending whitespace and trailing blanks and terminates the text with exactly one newline.
func (w *Writer) Finish() []byte {
	w.newlines = 0
	w.space = false
	end := len(w.buf)
	for end > 0 && isSpaceOrNewline(w.buf[end-1]) {
		end--
	}
	w.buf = append(w.buf[:end], '\n')
	w.atLineStart = true
	return w.buf
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

func isSpaceOrNewline(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
