package tagalog

import (
	"fmt"
	"sync"
	"time"
)

// Logger filters, formats and writes tagged messages.
type Logger struct {
	mu      sync.RWMutex
	cfg     Config
	sink    Sink
	baseDir string
	now     func() time.Time
}

// Option configures a Logger at construction time.
type Option func(*Logger)

// WithSink installs sink instead of the default file sink.
func WithSink(sink Sink) Option {
	return func(l *Logger) {
		l.sink = sink
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// WithBaseDir sets the directory relative destinations resolve against.
func WithBaseDir(dir string) Option {
	return func(l *Logger) {
		l.baseDir = dir
	}
}

// New returns a Logger using a copy of cfg.
func New(cfg Config, opts ...Option) *Logger {
	l := &Logger{
		cfg: cfg.Clone(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.baseDir == "" {
		l.baseDir = DefaultBaseDir()
	}
	return l
}

// Config returns a copy of the current configuration.
func (l *Logger) Config() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg.Clone()
}

// SetConfig replaces the whole configuration. No validation is done: a bad
// format simply produces odd lines.
func (l *Logger) SetConfig(cfg Config) {
	cfg = cfg.Clone()
	l.mu.Lock()
	l.cfg = cfg
	l.mu.Unlock()
}

// SetTimeFormat replaces only the date layout.
func (l *Logger) SetTimeFormat(layout string) {
	l.mu.Lock()
	l.cfg.DateFormat = layout
	l.mu.Unlock()
}

// SetSink installs the destination for all following lines. It accepts a
// Sink, a func(string) error or a func(string); anything else returns
// ErrInvalidSink and keeps the current sink.
func (l *Logger) SetSink(sink any) error {
	s, ok := asSink(sink)
	if !ok {
		return fmt.Errorf("%w, got %T", ErrInvalidSink, sink)
	}
	l.mu.Lock()
	l.sink = s
	l.mu.Unlock()
	return nil
}

// Sink returns the installed sink, or the file sink that would be used for
// the current destination.
func (l *Logger) Sink() Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sinkLocked()
}

func (l *Logger) sinkLocked() Sink {
	if l.sink != nil {
		return l.sink
	}
	return &FileSink{Path: l.cfg.LogDestination, BaseDir: l.baseDir}
}

// Print logs message under the untagged tag.
func (l *Logger) Print(message any) (bool, error) {
	return l.Log(message, Untagged)
}

// Log writes one line per enabled tag in tagging. Tagging is a single tag
// (any string type), a slice or array of string-typed items, a map keyed by
// a string type used as a set, or nil for Untagged. The result reports
// whether any line was handed to the sink.
//
// Errors from the sink are returned as is and stop the remaining tags. No
// lock is held while the sink runs, so a sink may log through l itself.
func (l *Logger) Log(message any, tagging any) (bool, error) {
	l.mu.RLock()
	cfg := l.cfg
	sink := l.sinkLocked()
	l.mu.RUnlock()

	if cfg.KillSwitch {
		return false, nil
	}

	candidates, err := resolveTagging(tagging)
	if err != nil {
		return false, err
	}
	tags := cfg.filter(candidates)
	if len(tags) == 0 {
		return false, nil
	}

	text, err := formatMessage(message)
	if err != nil {
		return false, err
	}

	date := l.now().Format(cfg.DateFormat)

	for _, tag := range tags {
		if err := sink.WriteLine(renderLine(cfg.MessageFormat, date, tag, text)); err != nil {
			return false, err
		}
	}
	return true, nil
}
