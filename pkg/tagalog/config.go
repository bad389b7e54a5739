package tagalog

import "sort"

// Tag labels a log call. Any string is a valid tag.
type Tag string

// Well known tags present in the default configuration.
const (
	Untagged Tag = "untagged"
	Force    Tag = "force"
	Off      Tag = "off"
)

const (
	DefaultDestination   = "/var/log/tagalog.log"
	DefaultDateFormat    = "2006-01-02 @ 15:04:05"
	DefaultMessageFormat = "$D [ $T ]  $M"
)

// Config holds everything Log consults on each call.
type Config struct {
	// LogDestination is the file the default sink appends to. Relative paths
	// are resolved against the logger's base directory.
	LogDestination string
	// KillSwitch disables all logging when true.
	KillSwitch bool
	// DateFormat is a time.Format layout.
	DateFormat string
	// MessageFormat is the line template. $D, $T and $M are replaced with
	// the date, the tag and the message.
	MessageFormat string
	// Tags maps a tag to its enabled flag. Tags missing from the map are
	// enabled.
	Tags map[Tag]bool
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LogDestination: DefaultDestination,
		KillSwitch:     false,
		DateFormat:     DefaultDateFormat,
		MessageFormat:  DefaultMessageFormat,
		Tags: map[Tag]bool{
			"tag_1":  true,
			"tag_2":  true,
			"tag_3":  true,
			Off:      false,
			Force:    true,
			Untagged: true,
		},
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	if c.Tags != nil {
		out.Tags = make(map[Tag]bool, len(c.Tags))
		for tag, enabled := range c.Tags {
			out.Tags[tag] = enabled
		}
	}
	return out
}

// Enabled reports whether tag would be logged. Only an explicit false
// disables a tag.
func (c Config) Enabled(tag Tag) bool {
	enabled, ok := c.Tags[tag]
	return !ok || enabled
}

// TagNames returns the configured tags in sorted order.
func (c Config) TagNames() []Tag {
	names := make([]Tag, 0, len(c.Tags))
	for tag := range c.Tags {
		names = append(names, tag)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (c Config) filter(candidates []Tag) []Tag {
	var out []Tag
	for _, tag := range candidates {
		if c.Enabled(tag) {
			out = append(out, tag)
		}
	}
	return out
}
