// Package sink holds the named sink implementations a configuration file
// can select.
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/rubiojr/tagalog/pkg/tagalog"
)

// Options carries the settings a factory may need. Unused fields are
// ignored.
type Options struct {
	Context context.Context
	// Path is the destination file for file based sinks.
	Path string
	// BaseDir resolves a relative Path.
	BaseDir string
	// URL is the endpoint for network sinks.
	URL string
}

// Factory builds a sink from options.
type Factory func(opts Options) (tagalog.Sink, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

func init() {
	Register("file", func(opts Options) (tagalog.Sink, error) {
		if opts.Path == "" {
			return nil, fmt.Errorf("file sink requires a path")
		}
		return &tagalog.FileSink{Path: opts.Path, BaseDir: opts.BaseDir}, nil
	})
	Register("stdout", func(Options) (tagalog.Sink, error) {
		return NewWriterSink(os.Stdout), nil
	})
	Register("stderr", func(Options) (tagalog.Sink, error) {
		return NewWriterSink(os.Stderr), nil
	})
	Register("gzip", func(opts Options) (tagalog.Sink, error) {
		if opts.Path == "" {
			return nil, fmt.Errorf("gzip sink requires a path")
		}
		return &GzipFileSink{Path: opts.Path, BaseDir: opts.BaseDir}, nil
	})
	Register("sqlite", func(opts Options) (tagalog.Sink, error) {
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite sink requires a path")
		}
		s, err := NewSQLiteSink(resolve(opts.Path, opts.BaseDir))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	Register("websocket", func(opts Options) (tagalog.Sink, error) {
		ctx := opts.Context
		if ctx == nil {
			ctx = context.Background()
		}
		s, err := DialWebSocket(ctx, opts.URL)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Register makes a sink factory available under name. It panics when name
// is registered twice or factory is nil.
func Register(name string, factory Factory) {
	if factory == nil {
		panic("sink: Register factory is nil")
	}
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if _, dup := factories[name]; dup {
		panic("sink: Register called twice for " + name)
	}
	factories[name] = factory
}

// New builds the sink registered under name.
func New(name string, opts Options) (tagalog.Sink, error) {
	factoriesMu.RLock()
	factory, ok := factories[name]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown sink %q", name)
	}
	s, err := factory(opts)
	if err != nil {
		return nil, fmt.Errorf("creating %s sink: %w", name, err)
	}
	return s, nil
}

// Names lists the registered sinks.
func Names() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes s if it holds resources.
func Close(s tagalog.Sink) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func resolve(path, baseDir string) string {
	fs := tagalog.FileSink{Path: path, BaseDir: baseDir}
	return fs.Resolve()
}
