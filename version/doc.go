// Package version provides build version information for tools built
// on prockit.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/prockit/version.Version=1.0.0"
//
// When ldflags are absent, values are recovered from the binary's
// embedded VCS build info where available.
package version
