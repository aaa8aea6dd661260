// Package version reports build metadata for the imgdup binary.
//
// Release builds inject Version, Commit and Date through -ldflags.
// Development builds fall back to the module and VCS information the Go
// toolchain embeds, so locally built binaries still report something
// useful from --version.
package version
