// Package log provides the named diagnostics loggers tagalog uses for its
// own messages (config reloads, sink failures, CLI warnings).
//
// It is built on the tagalog core: every service name is a tag, so a service
// can be silenced the same way a user silences a tag.
//
// Key Features
//
//   - Per service loggers via ForService(name)
//   - Automatic prefix in every line: `[name>]`
//   - Convenience level helpers: Infof, Warnf, Errorf, Debugf
//   - Debug logging can be enabled globally (SetGlobalDebug) or per service
//     (EnableDebugFor / DisableDebugFor)
//   - Silence / Unsilence drop everything a service emits
//   - Central output writer (SetOutput), stderr by default
//
// Basic Usage
//
//	import (
//		"github.com/rubiojr/tagalog/pkg/log"
//	)
//
//	func main() {
//		log.SetGlobalDebug(true)
//
//		l := log.ForService("pipe")
//		l.Infof("watching %s", path)
//		l.Debugf("reloaded %d tags", n)
//	}
//
// Testing
//
// Tests can redirect output by calling SetOutput with a bytes.Buffer,
// enabling assertions on log contents.
package log
