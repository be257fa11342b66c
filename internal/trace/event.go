package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower values are coarser.
type Scope uint8

const (
	// ScopeBatch covers a whole FormatPaths call.
	ScopeBatch Scope = iota + 1
	// ScopeFile covers one input file.
	ScopeFile
	// ScopePass covers lexing, parsing or rendering of one file.
	ScopePass
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeBatch:
		return "batch"
	case ScopeFile:
		return "file"
	case ScopePass:
		return "pass"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for root spans
	Name     string // "fmt", "file", "parse", ...
	Detail   string
	Extra    map[string]string
}
