package core

import "strings"

// VersionFull is the version reported by the command line tool.
const VersionFull = "0.1.0"

// Version represents a semantic version
type Version struct {
	Full  string
	Major string
	Minor string
	Patch string
}

// NewVersion creates a new Version from a full version string
func NewVersion(full string) *Version {
	parts := strings.Split(full, ".")
	v := &Version{Full: full}
	if len(parts) > 0 {
		v.Major = parts[0]
	}
	if len(parts) > 1 {
		v.Minor = parts[1]
	}
	if len(parts) > 2 {
		v.Patch = strings.Join(parts[2:], ".")
	}
	return v
}
