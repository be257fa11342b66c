package driver

import "time"

// Stage describes where a file is in the formatting pipeline.
type Stage string

const (
	// StageRead covers reading the file or stdin.
	StageRead Stage = "read"
	// StageParse covers lexing and parsing.
	StageParse Stage = "parse"
	// StageRender covers the pretty-printer pass.
	StageRender Stage = "render"
	StageWrite  Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is in the stage named by the event.
	StatusWorking Status = "working"
	// StatusDone indicates the file is finished.
	StatusDone  Status = "done"
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole batch when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Changed bool
	Cached  bool
	Err     error
	Elapsed time.Duration
	// Total is set on the batch event announcing the collected files.
	Total int
}

// ProgressSink consumes progress events. OnEvent is called from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
