// Package version reports seqctl build information.
//
// Version, commit and build time are set at compile time via -ldflags and
// fall back to the VCS stamp the Go toolchain embeds:
//
//	go build -ldflags "-X github.com/kbukum/rangekit/version.Version=1.0.0" ./cmd/seqctl
package version
