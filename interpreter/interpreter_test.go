package interpreter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createExecutables creates empty files with the provided names in a fresh directory.
func createExecutables(t *testing.T, names ...string) string {
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0755))
	}
	return dir
}

// TestExpandCaret verifies Poetry caret requirements are expanded into explicit ranges.
func TestExpandCaret(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"^0", "<1.0.0"},
		{"^0.2", ">=0.2.0,<0.3.0"},
		{"^0.2.3", ">=0.2.3,<0.3.0"},
		{"^3", ">=3.0.0,<4.0.0"},
		{"^3.10", ">=3.10.0,<4.0.0"},
		{"^3.10.2", ">=3.10.2,<4.0.0"},
		{"^9.9", ">=9.9.0,<10.0.0"},
		{">=3.10,<3.13", ">=3.10,<3.13"},
		{"~3.11", "~3.11"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExpandCaret(tc.input))
		})
	}
}

// TestReadPythonConstraint verifies the python requirement is read from string and table forms.
func TestReadPythonConstraint(t *testing.T) {
	testCases := []struct {
		name               string
		pyproject          string
		expectedConstraint string
		expectedOk         bool
		expectError        bool
	}{
		{"string requirement", "[tool.poetry.dependencies]\npython = \"^3.10\"\ntoml = \"*\"\n", "^3.10", true, false},
		{"table requirement", "[tool.poetry.dependencies.python]\nversion = \">=3.9\"\n", ">=3.9", true, false},
		{"no python requirement", "[tool.poetry.dependencies]\ntoml = \"*\"\n", "", false, false},
		{"no dependencies table", "[tool.poetry]\nname = \"x\"\n", "", false, true},
		{"unsupported requirement", "[tool.poetry.dependencies]\npython = 3\n", "", false, true},
		{"invalid toml", "[tool.poetry\n", "", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(tc.pyproject), 0644))

			constraint, ok, err := ReadPythonConstraint(dir)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expectedConstraint, constraint)
		})
	}

	// A missing pyproject.toml is an error
	_, _, err := ReadPythonConstraint(t.TempDir())
	assert.Error(t, err)
}

// TestFindMatching verifies the highest satisfying interpreter is selected across directories.
func TestFindMatching(t *testing.T) {
	first := createExecutables(t, "python3", "python3.9", "python3.11", "python3.11-config", "pydoc3.12", "perl")
	second := createExecutables(t, "python3.12", "python2.7")

	// The highest 3.x satisfies a caret requirement
	candidate, err := FindMatching(ExpandCaret("^3.10"), []string{first, second})
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, filepath.Join(second, "python3.12"), candidate.Path)

	// Upper bounds are honored
	candidate, err = FindMatching(">=3.9,<3.12", []string{first, second})
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, filepath.Join(first, "python3.11"), candidate.Path)

	// Nothing satisfies the constraint
	candidate, err = FindMatching(ExpandCaret("^4.0"), []string{first, second})
	require.NoError(t, err)
	assert.Nil(t, candidate)

	// Unreadable directories are skipped
	candidate, err = FindMatching("<3", []string{filepath.Join(first, "missing"), second})
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, filepath.Join(second, "python2.7"), candidate.Path)

	// Invalid constraints are reported
	_, err = FindMatching("not a constraint", []string{first})
	assert.Error(t, err)
}

// TestFindCandidates verifies file names are deduplicated by matched interpreter name.
func TestFindCandidates(t *testing.T) {
	dir := createExecutables(t, "python3.11", "python3.11-config", "python3.11m")

	candidates := FindCandidates([]string{dir})
	require.Len(t, candidates, 1)
	assert.Equal(t, filepath.Join(dir, "python3.11"), candidates[0].Path)
	assert.Equal(t, "3.11.0", candidates[0].Version.String())
}
