// Package version reports seqkit build information.
//
// Version, git commit, branch and build time are set at compile time
// via -ldflags, falling back to the module build info:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0" ./cmd/seqkit
package version
