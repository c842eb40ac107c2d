// Package version exposes build-time version metadata.
package version

// AdscheckVersion is the semantic version string embedded at build time.
var AdscheckVersion = "0.0.0-src"

// Set version at compile time with
// go build -ldflags "-X adscheck/pkg/version.AdscheckVersion=1.0.0" -o adscheck

// For a release build with version and optimization flags:
// go build -ldflags "-s -w -X adscheck/pkg/version.AdscheckVersion=1.0.0" -o adscheck
