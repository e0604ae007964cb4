// Package version exposes build metadata injected at link time:
//
//	go build -ldflags "-X github.com/nosoynormal/vermutcalc/pkg/version.version=v1.2.0"
package version

import "fmt"

//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = "0.0.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line summary of the build.
func String() string {
	return fmt.Sprintf("vermutcalc %s (commit %s, built %s)", version, gitCommit, buildDate)
}
