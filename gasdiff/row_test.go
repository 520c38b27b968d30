package gasdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseGasRow ensures gas rows are extracted regardless of colors, markers and indentation, and that non-data
// rows are rejected.
func TestParseGasRow(t *testing.T) {
	testCases := []struct {
		name        string
		line        string
		expectedOk  bool
		expectedRow GasRow
	}{
		{"bare row", "| transfer | 51234 |", true, GasRow{"transfer", 51234}},
		{"removed row", "-| transfer | 51234 |", true, GasRow{"transfer", 51234}},
		{"added row", "+| transfer | 51234 |", true, GasRow{"transfer", 51234}},
		{"colored row", "\x1b[31m-| transfer | 51234 |\x1b[m", true, GasRow{"transfer", 51234}},
		{"indented marker and padding", "  +  |   mint(uint256)   |   42 |", true, GasRow{"mint(uint256)", 42}},
		{"context row", " | burn | 7 |", true, GasRow{"burn", 7}},
		{"decimal value", "| f | 12.75 |", true, GasRow{"f", 12.75}},
		{"scientific value", "| f | 1.5e3 |", true, GasRow{"f", 1500}},
		{"signed exponent", "| f | 2e+2 |", true, GasRow{"f", 200}},
		{"extra columns", "| f | 10 | 20 | 30 |", true, GasRow{"f", 10}},
		{"name with spaces", "| test_Deposit Twice | 99 |", true, GasRow{"test_Deposit Twice", 99}},
		{"header row", "| Function Name | max |", false, GasRow{}},
		{"separator row", "|----------|-----|", false, GasRow{}},
		{"negative value", "| f | -5 |", false, GasRow{}},
		{"thousands separator", "| f | 1,000 |", false, GasRow{}},
		{"missing closing bar", "| f | 100", false, GasRow{}},
		{"overflowing value", "| f | 1e999 |", false, GasRow{}},
		{"empty line", "", false, GasRow{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row, ok := ParseGasRow(tc.line)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expectedRow, row)
		})
	}
}
