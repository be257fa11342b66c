package trace

import (
	"io"
	"sync"
)

// StreamTracer writes every kept event as soon as it arrives.
type StreamTracer struct {
	level Level
	mu    sync.Mutex // порядок строк совпадает с порядком Seq
	out   sink
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{level: level, out: sink{w: w, format: format}}
}

func (t *StreamTracer) Records(scope Scope) bool {
	return t.level.Records(scope)
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.Records(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = NextSeq()
	// ошибка записи трассы не прерывает форматирование
	_ = t.out.write(ev) //nolint:errcheck
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.flush()
}

func (t *StreamTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.close()
}
