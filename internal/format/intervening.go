package format

import (
	"bytes"
	"strings"
)

// intervening writes source content between lastByte and start that no node covers,
// typically comments left as trivia. Whitespace-only gaps produce nothing.
func (p *printer) intervening(start int) {
	start = min(start, len(p.src))
	if start <= p.lastByte {
		return
	}
	gap := p.src[p.lastByte:start]
	p.lastByte = start
	lo := 0
	for lo < len(gap) && isSpaceOrNewline(gap[lo]) {
		lo++
	}
	if lo == len(gap) {
		return
	}
	hi := len(gap)
	for hi > lo && isSpaceOrNewline(gap[hi-1]) {
		hi--
	}
	before, content, after := gap[:lo], gap[lo:hi], gap[hi:]

	switch {
	case bytes.IndexByte(before, '\n') >= 0:
		p.w.RequestNewline(1)
	case len(before) > 0:
		p.w.RequestSpace()
	case p.w.Len() > 0 && isWordByte(p.w.LastByte()) && isWordByte(content[0]):
		p.w.RequestSpace()
	}
	first := true
	for line := range strings.SplitSeq(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !first {
			p.w.ForceNewline(1)
		}
		p.w.WriteString(line)
		first = false
	}
	// перевод строки после комментария обязателен даже в однострочном режиме
	if bytes.IndexByte(after, '\n') >= 0 {
		p.w.ForceNewline(1)
	}
}
