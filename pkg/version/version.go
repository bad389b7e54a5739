package version

// Version represents the current version of tagalog
const Version = "1.2.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return "tagalog version " + Version
}
