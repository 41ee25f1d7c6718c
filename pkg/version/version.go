// Package version exposes build metadata stamped at link time via
// -ldflags "-X github.com/mcollina/atoll/pkg/version.Version=...".
package version

var (
	// Version is the release version of the binary.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
