// Package tagalog implements tag-gated logging.
//
// Every call to Log carries a message and one or more tags. A tag is dropped
// only when the configuration explicitly disables it; tags the configuration
// has never heard of are logged. Each surviving tag produces its own line:
//
//	l := tagalog.New(tagalog.DefaultConfig())
//	l.Log("cache warmed", tagalog.Tag("tag_1"))
//	// 2024-01-01 @ 00:00:00 [ tag_1 ]  cache warmed
//
// The kill switch turns every call into a no-op.
//
// Output goes to a Sink. Without one, lines are appended to the configured
// LogDestination, opening the file for each write. SetSink replaces that
// behavior with anything that accepts a line.
//
// A process-wide logger is available through the package level functions
// (Log, Print, SetConfig, SetSink...). Code that needs isolation, tests in
// particular, should build its own with New.
package tagalog
