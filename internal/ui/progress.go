// Package ui renders the interactive progress view of a formatting batch.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ponyfmt/internal/driver"
)

// maxVisible limits how many file rows are drawn; the rest is summarized.
const maxVisible = 12

type progressModel struct {
	title    string
	events   <-chan driver.Event
	spinner  spinner.Model
	prog     progress.Model
	items    []fileItem
	index    map[string]int
	total    int
	finished int
	changed  int
	failed   int
	width    int
	done     bool
}

type fileItem struct {
	path   string
	status string
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders driver progress
// events until the channel is closed.
func NewProgressModel(title string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		index:   make(map[string]int),
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = max(msg.Width-4, 10)
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 && !m.done {
		return m.spinner.View() + " " + m.title + "\n"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s %d/%d", m.title, m.finished, m.total)
	if m.done {
		header = fmt.Sprintf("done: %s, %d changed, %d failed", header, m.changed, m.failed)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 10
	nameWidth := max(m.width-statusWidth-4, 20)
	visible := m.visibleItems()
	for _, item := range visible {
		status := styleStatus(item.status).Render(fmt.Sprintf("%10s", item.status))
		fmt.Fprintf(&b, "  %s %s\n", status, truncate(item.path, nameWidth))
	}
	if hidden := len(m.items) - len(visible); hidden > 0 {
		fmt.Fprintf(&b, "  %10s ... %d more\n", "", hidden)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

// visibleItems предпочитает файлы в работе и изменённые, затем остальные по порядку.
func (m *progressModel) visibleItems() []fileItem {
	if len(m.items) <= maxVisible {
		return m.items
	}
	out := make([]fileItem, 0, maxVisible)
	for _, pass := range []func(string) bool{isActive, func(s string) bool { return !isActive(s) }} {
		for _, item := range m.items {
			if len(out) == maxVisible {
				return out
			}
			if pass(item.status) {
				out = append(out, item)
			}
		}
	}
	return out
}

func isActive(status string) bool {
	switch status {
	case "queued", "unchanged", "cached":
		return false
	}
	return true
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	if ev.File == "" {
		if ev.Total > 0 {
			m.total = ev.Total
		}
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		idx = len(m.items)
		m.index[ev.File] = idx
		m.items = append(m.items, fileItem{path: ev.File})
	}
	m.items[idx].status = statusLabel(ev)
	switch ev.Status {
	case driver.StatusDone, driver.StatusError:
		m.finished++
		if ev.Changed {
			m.changed++
		}
		if ev.Status == driver.StatusError {
			m.failed++
		}
	default:
		return nil
	}
	if m.total == 0 {
		return nil
	}
	return m.prog.SetPercent(float64(m.finished) / float64(m.total))
}

func statusLabel(ev driver.Event) string {
	switch ev.Status {
	case driver.StatusQueued:
		return "queued"
	case driver.StatusWorking:
		return stageLabel(ev.Stage)
	case driver.StatusError:
		return "error"
	case driver.StatusDone:
		switch {
		case ev.Cached:
			return "cached"
		case ev.Changed:
			return "changed"
		}
		return "unchanged"
	}
	return ""
}

func stageLabel(stage driver.Stage) string {
	switch stage {
	case driver.StageRead:
		return "reading"
	case driver.StageParse:
		return "parsing"
	case driver.StageRender:
		return "rendering"
	case driver.StageWrite:
		return "writing"
	}
	return "working"
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "changed":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case "unchanged", "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "reading", "parsing", "rendering", "writing", "working":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
