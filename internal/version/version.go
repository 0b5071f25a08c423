// Package version holds build metadata, stamped in at link time via
// -ldflags "-X github.com/atlasbim/gridline/internal/version.Version=...".
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns the printable one-line version description.
func String() string {
	return fmt.Sprintf("gridline %s (%s, built %s)", Version, GitSHA, BuildTime)
}
