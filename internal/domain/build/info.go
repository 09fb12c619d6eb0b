// Package build holds version information injected at link time.
package build

import (
	"fmt"
	"runtime"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// NewInfo fills GoVersion from the running toolchain and defaults empty
// fields to "unknown".
func NewInfo(version, commit, date string) Info {
	orUnknown := func(s string) string {
		if s == "" {
			return "unknown"
		}
		return s
	}
	return Info{
		Version:   orUnknown(version),
		Commit:    orUnknown(commit),
		BuildDate: orUnknown(date),
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("remotenav %s (%s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/remotenav"
}
