package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at release time; resolved from embedded build info
// otherwise.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns the module version, preferring the compile-time
// value over what the toolchain embedded.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// GetCommit returns the VCS revision the binary was built from.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	return buildSetting("vcs.revision", "unknown")
}

// GetBuildDate returns the VCS timestamp the binary was built from.
func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	return buildSetting("vcs.time", "unknown")
}

func buildSetting(key, fallback string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key {
				return setting.Value
			}
		}
	}
	return fallback
}

// GetFullVersion returns the version string with short commit and build
// date appended when they are known.
func GetFullVersion() string {
	version := GetVersion()
	commit := GetCommit()
	if commit == "unknown" || len(commit) <= 7 {
		return version
	}
	if date := GetBuildDate(); date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", version, commit[:7], date)
	}
	return fmt.Sprintf("%s (%s)", version, commit[:7])
}
