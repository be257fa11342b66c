package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAggregates(t *testing.T) {
	tm := NewTimer()
	tm.Add("parse", 2*time.Millisecond)
	tm.Add("render", time.Millisecond)
	tm.Add("parse", 3*time.Millisecond)

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "parse" || r.Phases[1].Name != "render" {
		t.Fatalf("phases keep first-use order, got %+v", r.Phases)
	}
	if r.Phases[0].Count != 2 || r.Phases[0].DurationMS != 5 {
		t.Fatalf("want parse x2 5ms, got %+v", r.Phases[0])
	}
	if r.TotalMS != 6 {
		t.Fatalf("want total 6ms, got %v", r.TotalMS)
	}
	sum := tm.Summary()
	for _, want := range []string{"timings:\n", "parse", "x2", "total"} {
		if !strings.Contains(sum, want) {
			t.Fatalf("summary misses %q:\n%s", want, sum)
		}
	}
}

func TestTimerConcurrentTrack(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stop := tm.Track("work")
			stop()
		}()
	}
	wg.Wait()
	if r := tm.Report(); len(r.Phases) != 1 || r.Phases[0].Count != 16 {
		t.Fatalf("want one phase counted 16 times, got %+v", r.Phases)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("x")()
	tm.Add("x", time.Second)
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer must stay empty, got %+v", r)
	}
}
