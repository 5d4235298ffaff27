// Package version carries build metadata stamped at link time and derives
// the identifiers other components report: the CLI version string and the
// User-Agent the relay sends upstream.
package version

import (
	"fmt"
	"runtime"
)

// Populated via -ldflags at release build time; a source build reports dev.
var (
	// Version is the semantic release version
	Version = "dev"
	// Commit is the git revision the binary was built from
	Commit = "unknown"
	// Date is the build timestamp
	Date = "unknown"
)

// Info bundles the stamped values with the toolchain and platform
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// GetInfo returns the build information of the running binary
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the full version line shown by `planforge version`
func (i Info) String() string {
	return fmt.Sprintf("planforge %s (%s) built %s with %s for %s",
		i.Version, i.shortCommit(), i.Date, i.GoVersion, i.Platform)
}

// Short returns only the version number, for scripting
func (i Info) Short() string {
	return i.Version
}

func (i Info) shortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

// UserAgent identifies this binary in outbound provider requests
func UserAgent() string {
	return "planforge/" + Version
}
