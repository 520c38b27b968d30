// Package version provides build and version information for forgekit, taken from ldflags when set and from the VCS
// metadata embedded by the Go toolchain otherwise.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// These variables can be set via ldflags at build time, e.g. -X github.com/crytic/forgekit/version.Version=1.2.3
var (
	// Version is the semantic version of the build.
	Version = "0.3.0"
	// GitCommit is the git commit hash.
	GitCommit = ""
	// GitCommitTime is the timestamp of the git commit.
	GitCommitTime = ""
	// GitTreeDirty indicates if the git tree was dirty at build time.
	GitTreeDirty = ""
)

// Info contains the full version information for the build.
type Info struct {
	Version       string
	GitCommit     string
	GitCommitTime string
	GitTreeDirty  bool
	GoVersion     string
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(info.Settings)
	}
}

// applyBuildSettings fills in any VCS variable that was not provided through ldflags.
func applyBuildSettings(settings []debug.BuildSetting) {
	for _, kv := range settings {
		var target *string
		switch kv.Key {
		case "vcs.revision":
			target = &GitCommit
		case "vcs.time":
			target = &GitCommitTime
		case "vcs.modified":
			target = &GitTreeDirty
		default:
			continue
		}
		if *target == "" {
			*target = kv.Value
		}
	}
}

// GetInfo returns the complete version information.
func GetInfo() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		GitCommitTime: GitCommitTime,
		GitTreeDirty:  GitTreeDirty == "true",
		GoVersion:     runtime.Version(),
	}
}

// commit returns the abbreviated commit hash, suffixed when the tree was dirty.
func (i Info) commit() string {
	c := i.GitCommit
	if len(c) > 7 {
		c = c[:7]
	}
	if i.GitTreeDirty {
		c += "-dirty"
	}
	return c
}

// built returns the commit time in a human-readable format.
func (i Info) built() string {
	t, err := time.Parse(time.RFC3339, i.GitCommitTime)
	if err != nil {
		return i.GitCommitTime
	}
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}

// String returns a formatted multi-line version string.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "forgekit version %s\n", i.Version)
	if i.GitCommit != "" {
		fmt.Fprintf(&sb, "  Commit:     %s\n", i.commit())
	}
	if i.GitCommitTime != "" {
		fmt.Fprintf(&sb, "  Built:      %s\n", i.built())
	}
	fmt.Fprintf(&sb, "  Go version: %s\n", i.GoVersion)
	return sb.String()
}

// Short returns a single-line version string suitable for --version output.
func (i Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	return i.Version + "+" + i.commit()
}
