package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestColoredIsPlainWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Colored(); got != Version {
		t.Fatalf("Colored() = %q, want %q", got, Version)
	}
}

func TestInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	Version, GitCommit, BuildDate = "1.2.3", "", ""
	if got := Info(); got != "ponyfmt 1.2.3" {
		t.Fatalf("Info() = %q", got)
	}
	Version, GitCommit, BuildDate = "weird", "abc123", "2024-01-15"
	if got := Info(); got != "ponyfmt weird (abc123) built 2024-01-15" {
		t.Fatalf("Info() = %q", got)
	}
}
