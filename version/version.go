// Package version holds the build version, set with
// -ldflags "-X github.com/okkostudio/wren2c/version.Version=...".
package version

var Version = "dev"
