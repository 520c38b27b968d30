package gasdiff

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultRelativeTolerance is the default relative tolerance (1%).
	DefaultRelativeTolerance = 0.01

	// DefaultAbsoluteTolerance is the default absolute tolerance, in gas units.
	DefaultAbsoluteTolerance = 10
)

// Tolerance describes how far two gas readings may drift apart before the change is reported. A change is within
// tolerance if it satisfies either the relative or the absolute bound.
type Tolerance struct {
	// Relative is the allowed difference as a fraction of the larger of the two readings.
	Relative float64 `json:"relTolerance" yaml:"relTolerance"`

	// Absolute is the allowed difference in gas units.
	Absolute float64 `json:"absTolerance" yaml:"absTolerance"`
}

// DefaultTolerance returns the Tolerance used when none is configured.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Relative: DefaultRelativeTolerance,
		Absolute: DefaultAbsoluteTolerance,
	}
}

// Validate returns an error if either bound is negative, NaN or infinite.
func (t Tolerance) Validate() error {
	if math.IsNaN(t.Relative) || math.IsInf(t.Relative, 0) || t.Relative < 0 {
		return errors.Errorf("relative tolerance must be a non-negative number, got %v", t.Relative)
	}
	if math.IsNaN(t.Absolute) || math.IsInf(t.Absolute, 0) || t.Absolute < 0 {
		return errors.Errorf("absolute tolerance must be a non-negative number, got %v", t.Absolute)
	}
	return nil
}

// Within returns true if the change from oldGas to newGas is within tolerance. A zero old reading has no meaningful
// ratio, so only the absolute bound is applied to it.
func (t Tolerance) Within(oldGas float64, newGas float64) bool {
	diff := math.Abs(newGas - oldGas)
	if diff <= t.Absolute {
		return true
	}
	if oldGas == 0 {
		return false
	}
	relativeBound := math.Max(t.Relative*math.Max(math.Abs(oldGas), math.Abs(newGas)), 0)
	return diff <= relativeBound
}

// Exceeds decides whether the change between two rows believed to describe the same function must be kept. Rows
// with different names are a structural change and always exceed tolerance.
func (t Tolerance) Exceeds(oldRow GasRow, newRow GasRow) bool {
	if oldRow.Name != newRow.Name {
		return true
	}
	return !t.Within(oldRow.Gas, newRow.Gas)
}

// ExceedsLines parses both raw lines and decides whether the change between them must be kept. If either line is
// not a gas row, the change is structural and always exceeds tolerance.
func (t Tolerance) ExceedsLines(oldLine string, newLine string) bool {
	oldRow, oldOk := ParseGasRow(oldLine)
	newRow, newOk := ParseGasRow(newLine)
	if !oldOk || !newOk {
		return true
	}
	return t.Exceeds(oldRow, newRow)
}
