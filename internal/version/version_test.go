package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetFullVersion(t *testing.T) {
	t.Cleanup(func() {
		Version, GitCommit, BuildTime = "dev", "unknown", "unknown"
	})
	Version, GitCommit, BuildTime = "v1.0.0", "abc123", "2024-05-01"

	full := GetFullVersion()
	for _, want := range []string{"v1.0.0", "commit: abc123", "built: 2024-05-01", runtime.Version()} {
		if !strings.Contains(full, want) {
			t.Errorf("GetFullVersion() = %q, missing %q", full, want)
		}
	}

	if GetVersion() != "v1.0.0" {
		t.Errorf("GetVersion() = %q", GetVersion())
	}
}
