// Package version holds build metadata stamped via -ldflags.
package version

// Set at build time with:
//
//	go build -ldflags "-X github.com/monieshop/salesight/pkg/version.Version=..."
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
