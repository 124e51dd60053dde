// Package cmd holds build metadata shared by the appdirs binaries.
package cmd

// Populated at build time through -ldflags.
var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is the UTC timestamp of the build.
	Date = "unknown"
)
