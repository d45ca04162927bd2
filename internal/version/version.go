package version

import "github.com/fatih/color"

// Version information for the alusus CLI.
// The variables initialized with plain string literals can be overridden
// at build time via -ldflags -X. Version is assembled from styled
// segments at package initialization, so -X does not change it.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// PlainVersion is Version without terminal styling, for banners that
	// go through a template.
	PlainVersion = "0.1.0-dev"

	// Revision is an optional revision suffix appended to the version.
	Revision = ""

	// ReleaseDate is the Gregorian release date in ISO-8601.
	ReleaseDate = "2026-01-01"

	// HijriReleaseDate is the Hijri release date.
	HijriReleaseDate = "1447-07-12"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// ReleaseYear returns the leading year of ReleaseDate.
func ReleaseYear() string {
	if len(ReleaseDate) < 4 {
		return ReleaseDate
	}
	return ReleaseDate[:4]
}

// HijriReleaseYear returns the leading year of HijriReleaseDate.
func HijriReleaseYear() string {
	if len(HijriReleaseDate) < 4 {
		return HijriReleaseDate
	}
	return HijriReleaseDate[:4]
}
