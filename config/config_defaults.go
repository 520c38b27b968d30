package config

import (
	"github.com/crytic/forgekit/gasdiff"
	"github.com/rs/zerolog"
)

// GetDefaultProjectConfig obtains a default configuration for a project.
func GetDefaultProjectConfig() *ProjectConfig {
	// Create a project configuration
	projectConfig := &ProjectConfig{
		CompareGas: gasdiff.DefaultTolerance(),
		Logging: LoggingConfig{
			Level:   zerolog.InfoLevel.String(),
			NoColor: false,
		},
		Doctor: DoctorConfig{
			FoundryConfig: "foundry.toml",
			WakeConfig:    "wake.toml",
		},
		Python: PythonConfig{
			PyprojectDirectory: ".",
			SearchDirectories:  []string{"/usr/bin"},
		},
	}

	// Return the project configuration
	return projectConfig
}
