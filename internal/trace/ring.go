package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the last N events in memory (circular buffer).
// With a sink configured, Close writes the retained events there.
type RingTracer struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
	level    Level
	out      *sink // nil: события только в памяти
}

// NewRingTracer creates a new RingTracer with specified capacity.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{
		events:   make([]Event, capacity),
		capacity: capacity,
		level:    level,
	}
}

// Emit adds an event to the ring buffer.
func (t *RingTracer) Emit(ev *Event) {
	if !t.level.Records(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	stored := *ev
	stored.Seq = NextSeq()
	t.events[t.head] = stored
	t.head = (t.head + 1) % t.capacity
	if t.head == 0 {
		t.full = true
	}
}

// Snapshot returns a copy of all stored events in chronological order.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.full {
		result := make([]Event, t.head)
		copy(result, t.events[:t.head])
		return result
	}
	result := make([]Event, t.capacity)
	copy(result, t.events[t.head:])
	copy(result[t.capacity-t.head:], t.events[:t.head])
	return result
}

// Dump writes all events to w in the given format.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	out := sink{w: w, format: format}
	for _, ev := range t.Snapshot() {
		if err := out.write(&ev); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Records(scope Scope) bool {
	return t.level.Records(scope)
}

// Flush is a no-op: events stay in memory until Close.
func (t *RingTracer) Flush() error {
	return nil
}

// Close writes the retained events to the configured output, if any.
func (t *RingTracer) Close() error {
	if t.out == nil {
		return nil
	}
	if err := t.Dump(t.out.w, t.out.format); err != nil {
		return err
	}
	return t.out.close()
}
