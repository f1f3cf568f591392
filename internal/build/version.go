// Package build holds values stamped in at link time.
package build

// Version is overridden via -ldflags "-X github.com/gYonder/posh/internal/build.Version=...".
var Version = "dev"
