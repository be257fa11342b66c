package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ponyfmt/internal/driver"
)

func feed(t *testing.T, events ...driver.Event) *progressModel {
	t.Helper()
	m, ok := NewProgressModel("fmt", nil).(*progressModel)
	if !ok {
		t.Fatalf("unexpected model type")
	}
	for _, ev := range events {
		m.applyEvent(ev)
	}
	return m
}

func TestProgressStatuses(t *testing.T) {
	m := feed(t,
		driver.Event{Status: driver.StatusQueued, Total: 3},
		driver.Event{File: "a.pony", Status: driver.StatusQueued},
		driver.Event{File: "b.pony", Status: driver.StatusQueued},
		driver.Event{File: "c.pony", Status: driver.StatusQueued},
		driver.Event{File: "a.pony", Status: driver.StatusWorking, Stage: driver.StageParse},
		driver.Event{File: "b.pony", Status: driver.StatusDone, Changed: true},
		driver.Event{File: "c.pony", Status: driver.StatusError, Err: errors.New("boom")},
	)
	want := map[string]string{"a.pony": "parsing", "b.pony": "changed", "c.pony": "error"}
	for _, item := range m.items {
		if item.status != want[item.path] {
			t.Fatalf("%s: want %q got %q", item.path, want[item.path], item.status)
		}
	}
	if m.finished != 2 || m.changed != 1 || m.failed != 1 {
		t.Fatalf("counters: finished %d changed %d failed %d", m.finished, m.changed, m.failed)
	}
	view := m.View()
	if !strings.Contains(view, "fmt 2/3") || !strings.Contains(view, "a.pony") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestProgressDone(t *testing.T) {
	m := feed(t,
		driver.Event{Status: driver.StatusQueued, Total: 1},
		driver.Event{File: "a.pony", Status: driver.StatusDone, Cached: true},
	)
	_, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatalf("done must quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("want tea.QuitMsg")
	}
	if view := m.View(); !strings.Contains(view, "done: fmt 1/1, 0 changed, 0 failed") || !strings.Contains(view, "cached") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestProgressLimitsRows(t *testing.T) {
	events := []driver.Event{{Status: driver.StatusQueued, Total: 20}}
	for i := range 20 {
		events = append(events, driver.Event{File: fmt.Sprintf("f%02d.pony", i), Status: driver.StatusQueued})
	}
	events = append(events, driver.Event{File: "f19.pony", Status: driver.StatusWorking, Stage: driver.StageRender})
	m := feed(t, events...)

	visible := m.visibleItems()
	if len(visible) != maxVisible || visible[0].path != "f19.pony" {
		t.Fatalf("active files come first, got %d rows starting with %q", len(visible), visible[0].path)
	}
	if view := m.View(); !strings.Contains(view, "... 8 more") {
		t.Fatalf("hidden rows must be summarized:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short.pony", 20, "short.pony"},
		{"some/very/long/path.pony", 10, "some/ve..."},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d): want %q got %q", tc.in, tc.width, tc.want, got)
		}
	}
}
