package trace

import (
	"io"
	"os"
)

// sink is where a tracer writes formatted events.
type sink struct {
	w      io.Writer
	format Format
}

func (s sink) write(ev *Event) error {
	_, err := s.w.Write(FormatEvent(ev, s.format))
	return err
}

func (s sink) flush() error {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// close flushes w and closes it; stdout and stderr stay open.
func (s sink) close() error {
	if err := s.flush(); err != nil {
		return err
	}
	if s.w == os.Stderr || s.w == os.Stdout {
		return nil
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
