package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	defer func() { Version, Commit, Date = old[0], old[1], old[2] }()

	Version, Commit, Date = "v1.0.0", "abc123", "2026-10-18"

	want := "version: v1.0.0\ncommit: abc123\nbuilt: 2026-10-18"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version ") {
		t.Errorf("Template() = %q, should start with cobra name placeholder", got)
	}
	if !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Template() = %q, should contain commit", got)
	}
}

func TestDefaults(t *testing.T) {
	if Version == "" || Commit == "" || Date == "" {
		t.Error("build info should have non-empty defaults")
	}
}
