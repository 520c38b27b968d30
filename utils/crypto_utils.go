package utils

import (
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// KeccakFile returns the keccak-256 digest of the contents of the file at the provided path.
func KeccakFile(path string) (common.Hash, error) {
	// Make sure the path refers to a file before reading it
	if !IsFile(path) {
		return common.Hash{}, errors.Errorf("file '%s' not found", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return common.Hash{}, errors.WithStack(err)
	}
	return crypto.Keccak256Hash(b), nil
}
