package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuild(t *testing.T, version, commit, branch, buildTime string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origBranch, origBuildTime, origRead :=
		Version, GitCommit, GitBranch, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, GitBranch, BuildTime, readBuildInfo =
			origVersion, origCommit, origBranch, origBuildTime, origRead
	})
	Version, GitCommit, GitBranch, BuildTime = version, commit, branch, buildTime
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGetDefaults(t *testing.T) {
	withBuild(t, "dev", "", "", "", nil)

	info := Get()
	if info.Version != "dev" || info.IsRelease {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Short() != "dev" {
		t.Errorf("Short() = %q", info.Short())
	}
	if info.String() != "dev" {
		t.Errorf("String() = %q", info.String())
	}
}

func TestGetFromLdflags(t *testing.T) {
	withBuild(t, "1.0.0", "abc1234", "main", "2024-01-15T10:30:00Z", &debug.BuildInfo{GoVersion: "go1.26.0"})

	info := Get()
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("expected build year 2024, got %d", info.BuildDate.Year())
	}
	if got := info.Short(); got != "1.0.0-abc1234" {
		t.Errorf("Short() = %q", got)
	}
	want := "1.0.0-abc1234 (built 2024-01-15T10:30:00Z) go1.26.0"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGetFromBuildInfo(t *testing.T) {
	withBuild(t, "dev", "", "feature/x", "", &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T00:00:00Z"},
		},
	})

	info := Get()
	if info.GitCommit != "0123456" {
		t.Errorf("GitCommit = %q", info.GitCommit)
	}
	if !info.IsDirty {
		t.Error("expected dirty build")
	}
	if got := info.Short(); got != "dev-0123456-dirty" {
		t.Errorf("Short() = %q", got)
	}
	if s := info.String(); !strings.Contains(s, "feature/x") || !strings.Contains(s, "built 2025-03-01") {
		t.Errorf("String() = %q", s)
	}
}

func TestDirtyVersionIsNotRelease(t *testing.T) {
	withBuild(t, "1.0.0-dirty", "", "", "", nil)
	if Get().IsRelease {
		t.Error("dirty version should not be a release")
	}
}
