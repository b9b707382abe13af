// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/pfraquete/BookFlow/version.GitRelease=v0.3.0 \
//	    -X github.com/pfraquete/BookFlow/version.GitCommit=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// GitRelease is the release tag, or "dev" for local builds
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from
	GitCommit = ""

	// GitCommitDate is the commit timestamp
	GitCommitDate = ""

	// GoInfo is the toolchain and platform
	GoInfo = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
)

func init() {
	if GitCommit != "" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			GitCommit = s.Value
		case "vcs.time":
			GitCommitDate = s.Value
		}
	}
}
