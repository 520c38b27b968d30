package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInfoFormatting verifies the short and long renderings with and without VCS metadata.
func TestInfoFormatting(t *testing.T) {
	info := Info{Version: "1.2.3", GoVersion: "go1.23.3"}
	assert.Equal(t, "1.2.3", info.Short())
	assert.Equal(t, "forgekit version 1.2.3\n  Go version: go1.23.3\n", info.String())

	info.GitCommit = "0123456789abcdef"
	info.GitCommitTime = "2025-04-08T13:38:49Z"
	info.GitTreeDirty = true
	assert.Equal(t, "1.2.3+0123456-dirty", info.Short())
	assert.Equal(t, "forgekit version 1.2.3\n"+
		"  Commit:     0123456-dirty\n"+
		"  Built:      2025-04-08 13:38:49 UTC\n"+
		"  Go version: go1.23.3\n", info.String())
}

// TestApplyBuildSettings verifies ldflags values take precedence over embedded VCS settings.
func TestApplyBuildSettings(t *testing.T) {
	defer func(commit, commitTime, dirty string) {
		GitCommit, GitCommitTime, GitTreeDirty = commit, commitTime, dirty
	}(GitCommit, GitCommitTime, GitTreeDirty)

	GitCommit, GitCommitTime, GitTreeDirty = "fromldflags", "", ""
	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "fromvcs"},
		{Key: "vcs.time", Value: "2025-01-01T00:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "GOOS", Value: "linux"},
	})

	assert.Equal(t, "fromldflags", GitCommit)
	assert.Equal(t, "2025-01-01T00:00:00Z", GitCommitTime)
	assert.True(t, GetInfo().GitTreeDirty)
}
