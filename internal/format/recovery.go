package format

import (
	"strings"

	"ponyfmt/internal/syntax"
)

// recoverError lays out the raw text of an Error node. Conditionals that lost their
// structure still get an indented body and a dedented `end`; anything else is kept as is.
func (p *printer) recoverError(n *syntax.Node) {
	text := strings.TrimSpace(n.Text(p.src))
	p.advance(int(n.Span.End))
	if text == "" {
		return
	}
	if hasWordPrefix(text, "if") {
		if at := indexWord(text, "then"); at >= 0 {
			p.spaceBeforeWord()
			p.w.WriteString(strings.TrimSpace(text[:at]) + " then")
			p.openCond()
			rest := strings.TrimSpace(text[at+len("then"):])
			switch {
			case rest == "":
			case hasWordSuffix(rest, "end"):
				p.recoverEnd(rest)
			default:
				p.writeLines(rest)
			}
			return
		}
	}
	if hasWordSuffix(text, "end") {
		p.recoverEnd(text)
		return
	}
	p.spaceBeforeWord()
	p.writeLines(text)
	p.w.RequestNewline(1)
}

// recoverEnd emits what precedes a trailing `end`, dedents, and puts `end` on its own line.
func (p *printer) recoverEnd(text string) {
	if content := strings.TrimSpace(text[:len(text)-len("end")]); content != "" {
		p.spaceBeforeWord()
		p.writeLines(content)
		p.w.RequestNewline(1)
	}
	if !p.closeCond() {
		p.w.SetIndent(p.w.Indent() - 1)
	}
	p.w.RequestNewline(1)
	p.w.WriteString("end")
	p.w.RequestNewline(1)
}

// writeLines writes text line by line, each line trimmed, at the current indent.
func (p *printer) writeLines(text string) {
	first := true
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !first {
			p.w.RequestNewline(1)
		}
		p.w.WriteString(line)
		first = false
	}
}

func (p *printer) spaceBeforeWord() {
	p.applySpacing(unarySpacing(p.w.LastByte()))
}

func hasWordPrefix(s, word string) bool {
	return strings.HasPrefix(s, word) && (len(s) == len(word) || !isWordByte(s[len(word)]))
}

func hasWordSuffix(s, word string) bool {
	if !strings.HasSuffix(s, word) {
		return false
	}
	at := len(s) - len(word)
	return at == 0 || !isWordByte(s[at-1])
}

// indexWord returns the offset of the first occurrence of word delimited by non-word bytes, or -1.
func indexWord(s, word string) int {
	for from := 0; from < len(s); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		at := from + i
		end := at + len(word)
		if (at == 0 || !isWordByte(s[at-1])) && (end == len(s) || !isWordByte(s[end])) {
			return at
		}
		from = at + 1
	}
	return -1
}
