package version

import (
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if PlainVersion == "" {
		t.Error("PlainVersion should have a default value")
	}

	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestReleaseYears(t *testing.T) {
	if got := ReleaseYear(); len(got) != 4 {
		t.Errorf("ReleaseYear() = %q", got)
	}
	if got := HijriReleaseYear(); len(got) != 4 {
		t.Errorf("HijriReleaseYear() = %q", got)
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion := Version
	origCommit := GitCommit
	origDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origCommit
		BuildDate = origDate
	}()

	// Override values (simulating build-time ldflags)
	Version = "1.2.3"
	GitCommit = "abc1234"
	BuildDate = "2026-08-06"

	if Version != "1.2.3" || GitCommit != "abc1234" || BuildDate != "2026-08-06" {
		t.Error("version variables are not overridable")
	}
}
