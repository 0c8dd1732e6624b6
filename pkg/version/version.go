// Package version holds build-time version info for daisy.
// Set via main using Set(), read with Version, Commit and BuildDate.
package version

import "fmt"

// Build information, populated by Set() at startup.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Set stores build-time version info. Call once from main. Empty values keep the defaults.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// BuildDate returns the build date string.
func BuildDate() string { return buildDate }

// String formats all build info on one line.
func String() string {
	return fmt.Sprintf("daisy %s (commit %s, built %s)", version, commit, buildDate)
}
