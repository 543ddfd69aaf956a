package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate, origNoColor := Version, GitCommit, BuildDate, color.NoColor
	Version, GitCommit, BuildDate = version, commit, date
	color.NoColor = true
	t.Cleanup(func() {
		Version, GitCommit, BuildDate, color.NoColor = origVersion, origCommit, origDate, origNoColor
	})
}

func TestColoredPlain(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withBuildInfo(t, tt.version, "", "")
			if got := Colored(); got != tt.want {
				t.Fatalf("Colored() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	withBuildInfo(t, "1.2.3", "abc123", "2024-01-15T10:30:00Z")
	got := Describe()
	for _, want := range []string{"gqlg 1.2.3\n", "commit: abc123\n", "built: 2024-01-15T10:30:00Z\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "message:") {
		t.Errorf("empty GitMessage should be omitted: %q", got)
	}
}
