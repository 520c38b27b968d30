package interpreter

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver"
	"github.com/crytic/forgekit/logging"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// executableRegex extracts the version from an interpreter file name such as python3.11.
var executableRegex = regexp.MustCompile(`python(\d+(?:\.\d+){0,2})`)

// Candidate describes an interpreter found in a search directory.
type Candidate struct {
	// Version is the version parsed from the file name.
	Version *semver.Version

	// Path is the search directory joined with the matched python<version> name.
	Path string
}

// FindCandidates scans the provided directories for python<version> file names and returns one candidate per match,
// in directory order. Directories that cannot be read are logged and skipped.
func FindCandidates(directories []string) []Candidate {
	logger := logging.GlobalLogger.NewSubLogger("module", logging.INTERPRETER_SERVICE)

	candidates := make([]Candidate, 0)
	for _, directory := range directories {
		entries, err := os.ReadDir(directory)
		if err != nil {
			logger.Warn("Could not read interpreter directory ", directory, ": ", err)
			continue
		}

		for _, entry := range entries {
			match := executableRegex.FindStringSubmatch(entry.Name())
			if match == nil {
				continue
			}
			version, err := semver.NewVersion(match[1])
			if err != nil {
				continue
			}

			candidate := Candidate{Version: version, Path: filepath.Join(directory, match[0])}
			if !slices.ContainsFunc(candidates, func(c Candidate) bool { return c.Path == candidate.Path }) {
				candidates = append(candidates, candidate)
			}
		}
	}
	return candidates
}

// FindMatching returns the highest versioned interpreter in the provided directories satisfying the constraint,
// or nil if none does. Equal versions are resolved in favor of the earlier directory.
func FindMatching(constraint string, directories []string) (*Candidate, error) {
	constraints, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid python constraint '%s'", constraint)
	}

	matching := make([]Candidate, 0)
	for _, candidate := range FindCandidates(directories) {
		if constraints.Check(candidate.Version) {
			matching = append(matching, candidate)
		}
	}
	if len(matching) == 0 {
		return nil, nil
	}

	// Highest version first, keeping discovery order for ties
	slices.SortStableFunc(matching, func(a, b Candidate) int {
		return b.Version.Compare(a.Version)
	})
	return &matching[0], nil
}
