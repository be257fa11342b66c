// Package version holds build information for the ponyfmt CLI.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI. It also keys the format cache.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with its numeric parts highlighted.
// Colors follow color.NoColor, so the text is plain when output is not a terminal.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." + versionMinorColor.Sprint(parts[1]) + "." + versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Info is one line of build details, omitting unknown fields.
func Info() string {
	var sb strings.Builder
	sb.WriteString("ponyfmt ")
	sb.WriteString(Colored())
	if GitCommit != "" {
		sb.WriteString(" (")
		sb.WriteString(GitCommit)
		sb.WriteString(")")
	}
	if BuildDate != "" {
		sb.WriteString(" built ")
		sb.WriteString(BuildDate)
	}
	return sb.String()
}
