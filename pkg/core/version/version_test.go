package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestToolkitVersion(t *testing.T) {
	if !semverRegex.MatchString(Toolkit) {
		t.Errorf("Toolkit version %q does not match semver format (x.y.z)", Toolkit)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"version", info.Version, Toolkit},
		{"git commit", info.GitCommit, GitCommit},
		{"build date", info.BuildDate, BuildDate},
		{"go version", info.GoVersion, runtime.Version()},
		{"platform", info.Platform, runtime.GOOS + "/" + runtime.GOARCH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	s := Info{Version: "1.2.3", GitCommit: "abc", BuildDate: "today", GoVersion: "go1", Platform: "x/y"}.String()

	for _, want := range []string{"textkit v1.2.3", "Git Commit: abc", "Build Date: today", "OS/Arch:    x/y"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
