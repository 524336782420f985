// Package version records the build identity of the sniff binary.
package version

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

var (
	// Pre is the pre-release tag appended to the version; release builds
	// clear it with -ldflags "-X sniff/internal/version.Pre=".
	Pre = "dev"

	// GitCommit, GitMessage and BuildDate are stamped at link time via
	// -ldflags; they stay empty for plain go-build binaries.
	GitCommit  = ""
	GitMessage = ""
	BuildDate  = ""
)

// Version is the semantic version string, e.g. "0.1.0-dev".
var Version = func() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if Pre != "" {
		v += "-" + Pre
	}
	return v
}()
