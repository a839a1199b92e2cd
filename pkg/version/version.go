// Package version holds build metadata injected at link time.
package version

// Set via -ldflags "-X github.com/sadopc/klip/pkg/version.Version=..." etc.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
