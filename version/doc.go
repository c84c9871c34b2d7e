// Package version provides version information and build metadata for utilkit.
//
// Version information comes from two sources: compile-time variables
// (Version, Commit, Date) injected via -ldflags, with runtime build info from
// debug.ReadBuildInfo() as the fallback for development builds.
//
// The package provides multiple version formats:
//   - GetVersion(): Simple version string
//   - GetFullVersion(): Formatted version with commit and build date
//   - GetInfo(): Complete version information as a struct
//   - PrintVersion(): Human-readable version output
package version
