package gasdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crytic/forgekit/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFilterScenarios runs the filter over small diffs covering pairing, collapsing and pass-through behavior.
func TestFilterScenarios(t *testing.T) {
	wide := Tolerance{Relative: 0.15, Absolute: 2000}

	testCases := []struct {
		name             string
		tolerance        Tolerance
		input            []string
		expectedLines    []string
		expectedExceeded bool
	}{
		{
			name:             "pair exceeding default tolerance is kept",
			tolerance:        DefaultTolerance(),
			input:            []string{"-| f | 10000 |", "+| f | 11000 |"},
			expectedLines:    []string{"-| f | 10000 |", "+| f | 11000 |"},
			expectedExceeded: true,
		},
		{
			name:             "pair within wide tolerance is collapsed",
			tolerance:        wide,
			input:            []string{"-| f | 10000 |", "+| f | 11000 |"},
			expectedLines:    []string{" | f | 11000 |"},
			expectedExceeded: false,
		},
		{
			name:             "removed row without counterpart is kept",
			tolerance:        DefaultTolerance(),
			input:            []string{"-| g | 500 |"},
			expectedLines:    []string{"-| g | 500 |"},
			expectedExceeded: true,
		},
		{
			name:             "added row without counterpart is kept",
			tolerance:        DefaultTolerance(),
			input:            []string{"+| g | 500 |"},
			expectedLines:    []string{"+| g | 500 |"},
			expectedExceeded: true,
		},
		{
			name:             "context only input passes through",
			tolerance:        DefaultTolerance(),
			input:            []string{" | Function | Gas |", " |----------|-----|", " | f | 100 |"},
			expectedLines:    []string{" | Function | Gas |", " |----------|-----|", " | f | 100 |"},
			expectedExceeded: false,
		},
		{
			name:             "empty input",
			tolerance:        DefaultTolerance(),
			input:            []string{},
			expectedLines:    []string{},
			expectedExceeded: false,
		},
		{
			name:             "identical non-data rows keep the removed side",
			tolerance:        DefaultTolerance(),
			input:            []string{"-|----|----|", "+|----|----|"},
			expectedLines:    []string{"-|----|----|"},
			expectedExceeded: false,
		},
		{
			name:             "non-data rows with different raw lengths are both kept",
			tolerance:        DefaultTolerance(),
			input:            []string{"\x1b[31m-|----|\x1b[m", "+|----|"},
			expectedLines:    []string{"\x1b[31m-|----|\x1b[m", "+|----|"},
			expectedExceeded: false,
		},
		{
			name:             "different function names are structural",
			tolerance:        Tolerance{Relative: 1, Absolute: 1e9},
			input:            []string{"-| a | 100 |", "+| b | 100 |"},
			expectedLines:    []string{"-| a | 100 |", "+| b | 100 |"},
			expectedExceeded: true,
		},
		{
			name:      "colored pair within tolerance is collapsed",
			tolerance: DefaultTolerance(),
			input: []string{
				"\x1b[31m-| transfer | 10000 |\x1b[m",
				"\x1b[32m+| transfer | 10050 |\x1b[m",
			},
			expectedLines:    []string{" | transfer | 10050 |\x1b[m"},
			expectedExceeded: false,
		},
		{
			name:      "mixed chunk collapses, keeps and preserves order",
			tolerance: DefaultTolerance(),
			input: []string{
				"@@ -1,6 +1,7 @@",
				" | Function | Gas |",
				"-| a | 100 |",
				"-| b | 200 |",
				"+| a | 105 |",
				"+| b | 900 |",
				"+| c | 50 |",
				" | d | 1 |",
			},
			expectedLines: []string{
				"@@ -1,6 +1,7 @@",
				" | Function | Gas |",
				" | a | 105 |",
				"-| b | 200 |",
				"+| b | 900 |",
				"+| c | 50 |",
				" | d | 1 |",
			},
			expectedExceeded: true,
		},
		{
			name:      "chunks are paired independently",
			tolerance: DefaultTolerance(),
			input: []string{
				"-| a | 100 |",
				" | x | 1 |",
				"+| a | 100 |",
			},
			expectedLines: []string{
				"-| a | 100 |",
				" | x | 1 |",
				"+| a | 100 |",
			},
			expectedExceeded: true,
		},
		{
			name:      "earlier duplicate name stays visible",
			tolerance: DefaultTolerance(),
			input: []string{
				"-| a | 100 |",
				"-| a | 100 |",
				"+| a | 100 |",
			},
			expectedLines: []string{
				"-| a | 100 |",
				" | a | 100 |",
			},
			expectedExceeded: true,
		},
		{
			name:      "within tolerance pair with non-data rows in the chunk",
			tolerance: DefaultTolerance(),
			input: []string{
				"-| Function Name | max |",
				"-| mint | 5000 |",
				"+| Function Name | max |",
				"+| mint | 5004 |",
			},
			expectedLines: []string{
				"-| Function Name | max |",
				" | mint | 5004 |",
			},
			expectedExceeded: false,
		},
		{
			name:             "trailing whitespace is removed",
			tolerance:        DefaultTolerance(),
			input:            []string{" | f | 1 |  \r", "-| g | 2 |\t"},
			expectedLines:    []string{" | f | 1 |", "-| g | 2 |"},
			expectedExceeded: true,
		},
		{
			name:             "file headers pass through",
			tolerance:        DefaultTolerance(),
			input:            []string{"--- a/gas.txt", "+++ b/gas.txt", "-| f | 100 |", "+| f | 101 |"},
			expectedLines:    []string{"--- a/gas.txt", "+++ b/gas.txt", " | f | 101 |"},
			expectedExceeded: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := NewFilter(tc.tolerance, nil).Apply(tc.input)
			assert.Equal(t, tc.expectedLines, result.Lines)
			assert.Equal(t, tc.expectedExceeded, result.Exceeded)
		})
	}
}

// TestFilterIdempotent verifies that filtering already-collapsed output changes nothing.
func TestFilterIdempotent(t *testing.T) {
	input := []string{
		" | Function | Gas |",
		"\x1b[31m-| deposit | 48000 |\x1b[m",
		"\x1b[31m-| withdraw | 31000 |\x1b[m",
		"\x1b[32m+| deposit | 48100 |\x1b[m",
		"\x1b[32m+| withdraw | 31005 |\x1b[m",
		" | total | 1 |",
	}

	filter := NewFilter(DefaultTolerance(), nil)
	first := filter.Apply(input)
	require.False(t, first.Exceeded)
	require.Len(t, first.Lines, 4)

	second := filter.Apply(first.Lines)
	assert.False(t, second.Exceeded)
	assert.Equal(t, first.Lines, second.Lines)
}

// TestFilterDebugTrace verifies that a debug-level logger receives a per-line trace.
func TestFilterDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(zerolog.DebugLevel)
	logger.AddWriter(&buf, logging.UNSTRUCTURED, false)

	result := NewFilter(DefaultTolerance(), logger).Apply([]string{"-| f | 100 |", "+| f | 500 |"})
	assert.True(t, result.Exceeded)

	trace := buf.String()
	assert.Contains(t, trace, "line 0 [removed]")
	assert.Contains(t, trace, "line 1 [added]")
	assert.Contains(t, trace, "exceeds tolerance")
}

// TestReadLines verifies that lines are split without their terminators and an empty reader yields no lines.
func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("-| f | 1 |\n+| f | 2 |\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"-| f | 1 |", "+| f | 2 |"}, lines)

	lines, err = ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}
