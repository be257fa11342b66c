package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"ponyfmt/internal/driver"
	"ponyfmt/internal/ui"
)

type fmtOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFmtWithUI formats paths while a progress view draws to out.
// Quitting the view cancels the files not started yet.
func runFmtWithUI(ctx context.Context, out io.Writer, title string, paths []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fmtOutcome, 1)
	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FormatPaths(ctx, paths, opts)
		outcomeCh <- fmtOutcome{results: res, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, events), tea.WithOutput(out))
	_, uiErr := program.Run()
	cancel()
	// воркеры не должны зависнуть на отправке в закрытый UI
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
