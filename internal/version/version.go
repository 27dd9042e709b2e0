// Package version holds the build version, overridden with
// -ldflags "-X ltrgraph/internal/version.Version=...".
package version

var Version = "dev"
