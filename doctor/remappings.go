package doctor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/crytic/forgekit/logging"
	"github.com/pkg/errors"
)

// foundryFile describes the subset of foundry.toml read by the doctor.
type foundryFile struct {
	Profile struct {
		Default struct {
			Remappings []string `toml:"remappings"`
		} `toml:"default"`
	} `toml:"profile"`
}

// wakeFile describes the subset of wake.toml read by the doctor.
type wakeFile struct {
	Compiler struct {
		Solc struct {
			Remappings []string `toml:"remappings"`
		} `toml:"solc"`
	} `toml:"compiler"`
}

// Remappings holds the import remappings declared by each tool.
type Remappings struct {
	// Foundry lists profile.default.remappings from the Foundry config, in declaration order.
	Foundry []string

	// Wake lists compiler.solc.remappings from the Wake config, in declaration order.
	Wake []string
}

// LoadRemappings reads the Foundry and Wake configuration files named foundryName and wakeName from the root
// directory and returns their remappings. Every missing file is named in the returned error.
func LoadRemappings(root string, foundryName string, wakeName string) (*Remappings, error) {
	logger := logging.GlobalLogger.NewSubLogger("module", logging.DOCTOR_SERVICE)

	foundryPath := filepath.Join(root, foundryName)
	wakePath := filepath.Join(root, wakeName)

	// Check both files up front so the user learns about all of them at once
	missing := make([]string, 0)
	for _, path := range []string{foundryPath, wakePath} {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			missing = append(missing, filepath.Base(path))
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("missing config file(s): %s", strings.Join(missing, ", "))
	}

	// Decode the Foundry remappings
	var foundry foundryFile
	metadata, err := toml.DecodeFile(foundryPath, &foundry)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", foundryName)
	}
	if !metadata.IsDefined("profile", "default", "remappings") {
		return nil, errors.Errorf("%s does not define profile.default.remappings", foundryName)
	}
	logger.Debug("Read ", len(foundry.Profile.Default.Remappings), " remappings from ", foundryPath)

	// Decode the Wake remappings
	var wake wakeFile
	metadata, err = toml.DecodeFile(wakePath, &wake)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", wakeName)
	}
	if !metadata.IsDefined("compiler", "solc", "remappings") {
		return nil, errors.Errorf("%s does not define compiler.solc.remappings", wakeName)
	}
	logger.Debug("Read ", len(wake.Compiler.Solc.Remappings), " remappings from ", wakePath)

	return &Remappings{
		Foundry: foundry.Profile.Default.Remappings,
		Wake:    wake.Compiler.Solc.Remappings,
	}, nil
}
