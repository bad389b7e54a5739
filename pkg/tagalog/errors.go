package tagalog

import "errors"

var (
	// ErrMessageType is returned when a message is not a string, a
	// sequence, a mapping or a tag.
	ErrMessageType = errors.New("message must be a string, sequence, mapping or tag")

	// ErrTaggingType is returned when tagging is not a tag or a collection
	// of tags.
	ErrTaggingType = errors.New("tagging must be a tag or a collection of tags")

	// ErrInvalidSink is returned by SetSink for values that cannot accept a
	// single line.
	ErrInvalidSink = errors.New("sink must accept a single string line")
)
