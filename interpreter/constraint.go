package interpreter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// caretRegex matches a Poetry caret requirement such as ^3, ^3.10 or ^0.2.1.
var caretRegex = regexp.MustCompile(`^\^(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// pyprojectFile describes the subset of pyproject.toml read when matching interpreters.
type pyprojectFile struct {
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// ExpandCaret converts a Poetry caret requirement into an explicit range constraint. Anything that is not a caret
// requirement is returned unchanged.
func ExpandCaret(constraint string) string {
	match := caretRegex.FindStringSubmatch(constraint)
	if match == nil {
		return constraint
	}
	major, minor, patch := match[1], match[2], match[3]

	// Pinning the major version to zero narrows the range to the minor version
	if major == "0" {
		if minor == "" {
			return "<1.0.0"
		}
		nextMinor := increment(minor)
		if patch == "" {
			return fmt.Sprintf(">=0.%s.0,<0.%s.0", minor, nextMinor)
		}
		return fmt.Sprintf(">=0.%s.%s,<0.%s.0", minor, patch, nextMinor)
	}

	nextMajor := increment(major)
	if minor == "" {
		return fmt.Sprintf(">=%s.0.0,<%s.0.0", major, nextMajor)
	} else if patch == "" {
		return fmt.Sprintf(">=%s.%s.0,<%s.0.0", major, minor, nextMajor)
	}
	return fmt.Sprintf(">=%s.%s.%s,<%s.0.0", major, minor, patch, nextMajor)
}

// increment returns the decimal string one greater than the provided digit string.
func increment(digits string) string {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return digits
	}
	return strconv.FormatUint(n+1, 10)
}

// ReadPythonConstraint reads the python requirement from tool.poetry.dependencies in the pyproject.toml held by the
// provided directory. The boolean is false when the project does not constrain python. A requirement may be given
// either as a string or as a table with a version key.
func ReadPythonConstraint(directory string) (string, bool, error) {
	path := filepath.Join(directory, "pyproject.toml")

	var pyproject pyprojectFile
	metadata, err := toml.DecodeFile(path, &pyproject)
	if err != nil {
		return "", false, errors.Wrapf(err, "could not read pyproject.toml at %s", path)
	}
	if !metadata.IsDefined("tool", "poetry", "dependencies") {
		return "", false, errors.Errorf("pyproject.toml at %s does not define tool.poetry.dependencies", path)
	}

	requirement, ok := pyproject.Tool.Poetry.Dependencies["python"]
	if !ok {
		return "", false, nil
	}

	switch t := requirement.(type) {
	case string:
		return t, t != "", nil
	case map[string]any:
		if version, ok := t["version"].(string); ok {
			return version, version != "", nil
		}
	}
	return "", false, errors.Errorf("pyproject.toml at %s has an unsupported python requirement: %v", path, requirement)
}
