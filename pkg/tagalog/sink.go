package tagalog

import (
	"os"
	"path/filepath"
	"reflect"
)

// Sink receives formatted lines, one per call, without trailing newline.
type Sink interface {
	WriteLine(line string) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line string) error

func (f SinkFunc) WriteLine(line string) error {
	return f(line)
}

// FileSink appends each line to a file. The file is opened and closed on
// every write; no handle is kept between calls.
type FileSink struct {
	Path    string
	BaseDir string
}

// Resolve returns the path lines are written to.
func (s *FileSink) Resolve() string {
	if filepath.IsAbs(s.Path) || s.BaseDir == "" {
		return s.Path
	}
	return filepath.Join(s.BaseDir, s.Path)
}

func (s *FileSink) WriteLine(line string) error {
	f, err := os.OpenFile(s.Resolve(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// DefaultBaseDir is the directory relative destinations are resolved
// against: the directory holding the running executable, or the working
// directory when that cannot be determined.
func DefaultBaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// asSink converts the values SetSink accepts.
func asSink(v any) (Sink, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case Sink:
		if isNilPointer(s) {
			return nil, false
		}
		return s, true
	case func(string) error:
		if s == nil {
			return nil, false
		}
		return SinkFunc(s), true
	case func(string):
		if s == nil {
			return nil, false
		}
		return SinkFunc(func(line string) error {
			s(line)
			return nil
		}), true
	default:
		return nil, false
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Interface, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
