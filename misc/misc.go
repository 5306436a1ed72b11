// Package misc keeps small helpers needed across the program.
package misc

import (
	"runtime/debug"
)

const appName = "csskit"

// GetAppName returns base name of the program.
func GetAppName() string {
	return appName
}

// GetVersion returns program version recorded by the module system.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
