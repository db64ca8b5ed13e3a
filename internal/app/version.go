package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/tourcrew-backend/internal/app.Version=1.4.0"
//
// Commit and BuildTime fall back to the VCS data embedded by the Go toolchain.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health, startup logs and
// `tourcrew version`.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = shortRevision(s.Value)
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
