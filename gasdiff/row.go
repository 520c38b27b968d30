package gasdiff

import (
	"regexp"
	"strconv"
	"strings"
)

// GasRow describes a single "| name | gas |" row of a gas report.
type GasRow struct {
	// Name is the function (or test) name in the first column.
	Name string

	// Gas is the numeric value in the second column.
	Gas float64
}

// gasRowRegex matches a gas report table row once ANSI codes, whitespace and the diff marker have been removed.
// The value may be an integer, a decimal or use scientific notation.
var gasRowRegex = regexp.MustCompile(`^\|\s*([^|]+?)\s*\|\s*(\d+(?:\.\d+)?(?:e[+-]?\d+)?)\s*\|`)

// ParseGasRow extracts a GasRow from a raw diff line. It returns false if the line is not a data row, which includes
// headers, separators and rows whose value could not be parsed.
func ParseGasRow(line string) (GasRow, bool) {
	clean := strings.TrimLeft(StripANSI(line), " \t")
	if strings.HasPrefix(clean, "-") || strings.HasPrefix(clean, "+") {
		clean = clean[1:]
	}
	clean = strings.TrimLeft(clean, " \t")

	match := gasRowRegex.FindStringSubmatch(clean)
	if match == nil {
		return GasRow{}, false
	}

	gas, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return GasRow{}, false
	}
	return GasRow{Name: strings.TrimSpace(match[1]), Gas: gas}, true
}
