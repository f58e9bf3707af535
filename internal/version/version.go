package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time with
// -ldflags "-X certportal/internal/version.Version=v1.2.3 -X certportal/internal/version.GitCommit=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

func GetVersion() string {
	return Version
}

// GetFullVersion is the one line form printed by the version command and logged at startup.
func GetFullVersion() string {
	info := Get()
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
}
