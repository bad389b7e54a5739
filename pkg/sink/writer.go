package sink

import (
	"io"
	"sync"
)

// WriterSink writes each line followed by a newline to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// SetOutput swaps the underlying writer.
func (s *WriterSink) SetOutput(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}
