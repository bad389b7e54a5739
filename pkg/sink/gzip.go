package sink

import (
	"os"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// GzipFileSink appends every line to a file as its own gzip member.
// Concatenated members form a valid gzip stream, so the file reads back
// with any gzip reader. Like the plain file sink it opens the file per line.
type GzipFileSink struct {
	Path    string
	BaseDir string

	// mu keeps members whole; a member takes several writes.
	mu sync.Mutex
}

func (s *GzipFileSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(resolve(s.Path, s.BaseDir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(line + "\n")); err != nil {
		_ = f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
