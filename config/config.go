package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/crytic/forgekit/gasdiff"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

// ProjectConfig describes the configuration shared by every forgekit command.
type ProjectConfig struct {
	// CompareGas describes the tolerance used by the compare-gas command when no flags override it.
	CompareGas gasdiff.Tolerance `json:"compareGas" yaml:"compareGas"`

	// Logging describes the configuration used for console logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Doctor describes the configuration files compared by the doctor command.
	Doctor DoctorConfig `json:"doctor" yaml:"doctor"`

	// Python describes where the match-python command looks for the project definition and interpreters.
	Python PythonConfig `json:"python" yaml:"python"`
}

// LoggingConfig describes the configuration options for logging.
type LoggingConfig struct {
	// Level describes the minimum level that will be logged, as understood by zerolog.ParseLevel.
	Level string `json:"level" yaml:"level"`

	// NoColor indicates whether console output should be colorized.
	NoColor bool `json:"noColor" yaml:"noColor"`
}

// DoctorConfig describes the configuration options for the doctor command.
type DoctorConfig struct {
	// FoundryConfig is the file name of the Foundry configuration, relative to the project root.
	FoundryConfig string `json:"foundryConfig" yaml:"foundryConfig"`

	// WakeConfig is the file name of the Wake configuration, relative to the project root.
	WakeConfig string `json:"wakeConfig" yaml:"wakeConfig"`
}

// PythonConfig describes the configuration options for the match-python command.
type PythonConfig struct {
	// PyprojectDirectory is the directory holding pyproject.toml.
	PyprojectDirectory string `json:"pyprojectDirectory" yaml:"pyprojectDirectory"`

	// SearchDirectories lists the directories scanned for python<version> executables.
	SearchDirectories []string `json:"searchDirectories" yaml:"searchDirectories"`
}

// isYAML returns true if the path refers to a YAML document rather than a JSON one.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// ReadProjectConfigFromFile reads a ProjectConfig from a provided file path. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON. Values not present in the file retain their defaults.
// Returns the ProjectConfig if it succeeds, or an error if one occurs.
func ReadProjectConfigFromFile(path string) (*ProjectConfig, error) {
	// Read our project configuration file data
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Parse the project configuration on top of the defaults
	projectConfig := GetDefaultProjectConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(b, projectConfig)
	} else {
		err = json.Unmarshal(b, projectConfig)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode project config '%s'", path)
	}

	return projectConfig, nil
}

// WriteToFile writes the ProjectConfig to a provided file path, serialized as YAML if the path ends in .yaml or .yml
// and as JSON otherwise.
// Returns an error if one occurs.
func (p *ProjectConfig) WriteToFile(path string) error {
	// Serialize the configuration
	var (
		b   []byte
		err error
	)
	if isYAML(path) {
		b, err = yaml.Marshal(p)
	} else {
		b, err = json.MarshalIndent(p, "", "\t")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	// Save it to the provided output path and return the result
	err = os.WriteFile(path, b, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// LogLevel parses the configured log level.
func (p *ProjectConfig) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(p.Logging.Level)
	if err != nil {
		return zerolog.NoLevel, errors.Errorf("invalid log level '%s'", p.Logging.Level)
	}
	return level, nil
}

// Validate validates that the ProjectConfig meets certain requirements.
// Returns an error if one occurs.
func (p *ProjectConfig) Validate() error {
	// Verify the compare-gas tolerance is usable
	if err := p.CompareGas.Validate(); err != nil {
		return err
	}

	// Verify the log level is known. An empty level is treated as zerolog.NoLevel and accepted.
	if _, err := p.LogLevel(); err != nil {
		return err
	}

	// Verify the doctor file names are present
	if p.Doctor.FoundryConfig == "" || p.Doctor.WakeConfig == "" {
		return errors.Errorf("doctor config file names cannot be empty")
	}

	// Verify we have somewhere to look for interpreters
	if len(p.Python.SearchDirectories) == 0 {
		return errors.Errorf("python search directories cannot be empty")
	}
	for _, dir := range p.Python.SearchDirectories {
		if dir == "" {
			return errors.Errorf("python search directories cannot contain an empty path")
		}
	}

	return nil
}
