package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives the events of batch, file and pass spans.
type Tracer interface {
	// Records reports whether events of scope are kept; Begin skips the span otherwise.
	Records(scope Scope) bool
	// Emit stores ev. Safe for concurrent use by the driver workers.
	Emit(ev *Event)
	Flush() error
	Close() error
}

type discard struct{}

func (discard) Records(Scope) bool { return false }
func (discard) Emit(*Event) {}
func (discard) Flush() error { return nil }
func (discard) Close() error { return nil }

// Nop drops every event. It is what FromContext returns when no tracer is set.
var Nop Tracer = discard{}

// Config describes the tracer built from the --trace flags.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // wins over OutputPath
	OutputPath string    // "" or "-" means stderr
	// RingSize > 0 keeps only the last RingSize events and writes them on Close.
	RingSize int
}

// New builds the tracer for cfg; LevelOff always gives Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	w, err := cfg.writer()
	if err != nil {
		return nil, err
	}
	out := sink{w: w, format: cfg.format()}
	if cfg.RingSize > 0 {
		ring := NewRingTracer(cfg.RingSize, cfg.Level)
		ring.out = &out
		return ring, nil
	}
	return &StreamTracer{level: cfg.Level, out: out}, nil
}

// format resolves FormatAuto by the output file extension.
func (cfg Config) format() Format {
	if cfg.Format != FormatAuto {
		return cfg.Format
	}
	for _, ext := range []string{".ndjson", ".jsonl"} {
		if strings.HasSuffix(cfg.OutputPath, ext) {
			return FormatNDJSON
		}
	}
	return FormatText
}

func (cfg Config) writer() (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}
