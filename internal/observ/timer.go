// Package observ aggregates phase timings of a formatting batch.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase records the accumulated duration of one named phase.
type Phase struct {
	Name  string
	Dur   time.Duration
	Count int
}

// Timer sums durations per phase. It is safe for concurrent use; a nil
// Timer records nothing.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
	index  map[string]int
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 8), index: make(map[string]int, 8)}
}

// Track starts timing name and returns the function that stops it.
func (t *Timer) Track(name string) func() {
	if t == nil {
		return func() {}
	}
	start := time.Now()
	return func() { t.Add(name, time.Since(start)) }
}

// Add accounts d to the phase name. Phases keep the order of their first use.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, ok := t.index[name]
	if !ok {
		idx = len(t.phases)
		t.index[name] = idx
		t.phases = append(t.phases, Phase{Name: name})
	}
	t.phases[idx].Dur += d
	t.phases[idx].Count++
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %9.2f ms  x%d\n", p.Name, p.DurationMS, p.Count)
	}
	fmt.Fprintf(&sb, "  %-12s %9.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
}

// Report описывает агрегированные данные таймера.
// TotalMS суммирует фазы всех воркеров, поэтому может превышать реальное время.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Count:      phase.Count,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
