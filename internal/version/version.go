// Package version provides build version information for modelcheck.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"
	// Commit is the git commit hash (set by build flags)
	Commit = "unknown"
	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"
)

// Info contains version and build information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Release   bool   `json:"release"`
}

// Get returns the version information
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	info.Release = info.IsRelease()
	return info
}

// String returns a formatted version string
func (i Info) String() string {
	return i.Version
}

// IsRelease reports whether the binary was built from a tagged release,
// i.e. the version is valid semver without a prerelease suffix.
func (i Info) IsRelease() bool {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// Full returns a detailed version string with all build information
func (i Info) Full() string {
	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	channel := "dev"
	if i.IsRelease() {
		channel = "release"
	}
	return fmt.Sprintf("modelcheck %s [%s] (%s) built %s %s %s", i.Version, channel, commit, i.BuildDate, i.GoVersion, i.Platform)
}
