package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rubiojr/tagalog/pkg/sink"
	"github.com/rubiojr/tagalog/pkg/tagalog"
)

// Logger represents a named logger with helper methods.
type Logger struct {
	name     string
	warnOnce sync.Once
}

var (
	// globalDebug holds global debug enablement.
	globalDebug atomic.Bool

	// serviceDebug stores per-service debug overrides.
	serviceDebug sync.Map // map[string]*atomic.Bool

	// loggers caches created named loggers.
	loggers sync.Map // map[string]*Logger

	output = sink.NewWriterSink(os.Stderr)

	// core does the gating and formatting; service names are its tags.
	core = tagalog.New(tagalog.Config{
		DateFormat:    "2006/01/02 15:04:05.000000",
		MessageFormat: "$D $M",
		Tags:          map[tagalog.Tag]bool{},
	}, tagalog.WithSink(output), tagalog.WithClock(func() time.Time {
		return Timestamp()
	}))

	silenceMu sync.Mutex
)

// ForService returns (and memoizes) a named logger for the given service.
func ForService(name string) *Logger {
	if name == "" {
		name = "unknown"
	}
	if l, ok := loggers.Load(name); ok {
		return l.(*Logger)
	}
	actual, _ := loggers.LoadOrStore(name, &Logger{name: name})
	return actual.(*Logger)
}

// SetGlobalDebug enables or disables debug logging globally.
func SetGlobalDebug(enabled bool) {
	globalDebug.Store(enabled)
}

// GlobalDebug returns whether global debug logging is enabled.
func GlobalDebug() bool {
	return globalDebug.Load()
}

// EnableDebugFor enables debug logging for a specific service.
func EnableDebugFor(name string) {
	if name == "" {
		return
	}
	val, _ := serviceDebug.LoadOrStore(name, &atomic.Bool{})
	val.(*atomic.Bool).Store(true)
}

// DisableDebugFor disables debug logging for a specific service.
func DisableDebugFor(name string) {
	if name == "" {
		return
	}
	if val, ok := serviceDebug.Load(name); ok {
		val.(*atomic.Bool).Store(false)
	}
}

// DebugEnabledFor returns whether debug is enabled for the given service (either
// globally or specifically for the service).
func DebugEnabledFor(name string) bool {
	if globalDebug.Load() {
		return true
	}
	if val, ok := serviceDebug.Load(name); ok {
		return val.(*atomic.Bool).Load()
	}
	return false
}

// Silence drops every line from the named service.
func Silence(name string) {
	setServiceEnabled(name, false)
}

// Unsilence undoes Silence.
func Unsilence(name string) {
	setServiceEnabled(name, true)
}

func setServiceEnabled(name string, enabled bool) {
	silenceMu.Lock()
	defer silenceMu.Unlock()
	cfg := core.Config()
	cfg.Tags[tagalog.Tag(name)] = enabled
	core.SetConfig(cfg)
}

// SetOutput sets the output writer for all loggers.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	output.SetOutput(w)
}

// prefix builds the standard prefix for the logger.
func (l *Logger) prefix() string {
	return "[" + l.name + ">]"
}

// logInternal formats and outputs the final log line.
func (l *Logger) logInternal(level string, msg string) {
	if level != "" {
		level = level + " "
	}
	if _, err := core.Log(level+l.prefix()+" "+msg, tagalog.Tag(l.name)); err != nil {
		fmt.Fprintf(os.Stderr, "log: writing %s line: %v\n", l.name, err)
	}
}

// Infof logs an informational message with fmt.Sprintf semantics.
func (l *Logger) Infof(format string, args ...any) {
	l.logInternal(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.warnOnce.Do(func() {
		l.logInternal(LevelWarn, "warnings active for this logger")
	})
	l.logInternal(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logInternal(LevelError, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message if debug is enabled (globally or for this logger's service).
func (l *Logger) Debugf(format string, args ...any) {
	if !DebugEnabledFor(l.name) {
		return
	}
	l.logInternal(LevelDebug, fmt.Sprintf(format, args...))
}

// Timestamp returns the time stamped on lines. Tests may replace it.
var Timestamp = func() time.Time {
	return time.Now()
}

const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelDebug = "DEBUG"
)
