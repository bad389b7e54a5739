package tagalog

import "sync"

var (
	std     *Logger
	stdOnce sync.Once
)

// Default returns the process-wide logger, built from DefaultConfig on
// first use.
func Default() *Logger {
	stdOnce.Do(func() {
		std = New(DefaultConfig())
	})
	return std
}

// Log logs through the process-wide logger.
func Log(message any, tagging any) (bool, error) {
	return Default().Log(message, tagging)
}

// Print logs message as untagged through the process-wide logger.
func Print(message any) (bool, error) {
	return Default().Print(message)
}

// GetConfig returns a copy of the process-wide configuration.
func GetConfig() Config {
	return Default().Config()
}

// SetConfig replaces the process-wide configuration.
func SetConfig(cfg Config) {
	Default().SetConfig(cfg)
}

// SetSink installs the process-wide sink.
func SetSink(sink any) error {
	return Default().SetSink(sink)
}

// SetTimeFormat overrides the process-wide date layout.
func SetTimeFormat(layout string) {
	Default().SetTimeFormat(layout)
}
