package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/crytic/forgekit/logging/colors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestAddAndRemoveWriter will test to Logger.AddWriter and Logger.RemoveWriter functions to ensure that they work as expected.
func TestAddAndRemoveWriter(t *testing.T) {
	// Create a base logger
	logger := NewLogger(zerolog.InfoLevel)

	// Add three types of writers
	// 1. Unstructured and colorized output to stdout
	logger.AddWriter(os.Stdout, UNSTRUCTURED, true)
	// 2. Unstructured and non-colorized output to stderr
	logger.AddWriter(os.Stderr, UNSTRUCTURED, false)
	// 3. Structured output to stdin
	logger.AddWriter(os.Stdin, STRUCTURED, false)

	// We should expect the underlying data structures are correctly updated
	assert.Equal(t, 1, len(logger.unstructuredWriters))
	assert.Equal(t, 1, len(logger.unstructuredColorWriters))
	assert.Equal(t, 1, len(logger.structuredWriters))

	// Try to add duplicate writers
	logger.AddWriter(os.Stdout, UNSTRUCTURED, true)
	logger.AddWriter(os.Stderr, UNSTRUCTURED, false)
	logger.AddWriter(os.Stdin, STRUCTURED, false)

	// Ensure that the lengths of the lists have not changed
	assert.Equal(t, 1, len(logger.unstructuredWriters))
	assert.Equal(t, 1, len(logger.unstructuredColorWriters))
	assert.Equal(t, 1, len(logger.structuredWriters))

	// Remove each writer
	logger.RemoveWriter(os.Stdout, UNSTRUCTURED, true)
	logger.RemoveWriter(os.Stderr, UNSTRUCTURED, false)
	logger.RemoveWriter(os.Stdin, STRUCTURED, false)

	// We should expect the underlying data structures are correctly updated
	assert.Equal(t, 0, len(logger.unstructuredWriters))
	assert.Equal(t, 0, len(logger.unstructuredColorWriters))
	assert.Equal(t, 0, len(logger.structuredWriters))
}

// TestDisabledColors verifies the behavior of the unstructured colored logger when colors are disabled,
// ensuring that it does not output colors when the color feature is turned off.
func TestDisabledColors(t *testing.T) {
	colors.DisableColor()
	defer colors.EnableColor()

	// Create a base logger with a colorized writer
	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, UNSTRUCTURED, true)
	logger.Info("foo")

	// Ensure that msg doesn't include colors
	assert.Contains(t, buf.String(), colors.LEFT_ARROW+" foo")
	assert.NotContains(t, buf.String(), "\x1b[")
}

// TestLevelFiltering ensures that events below the logger's level are discarded and SetLevel takes effect.
func TestLevelFiltering(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, UNSTRUCTURED, false)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(zerolog.DebugLevel)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

// TestSubLoggerContext ensures sub-loggers carry their key-value context into structured output.
func TestSubLoggerContext(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, STRUCTURED, false)

	subLogger := logger.NewSubLogger("module", GASDIFF_SERVICE)
	subLogger.Info("line ", 3, " collapsed", StructuredLogInfo{"name": "transfer"})

	output := buf.String()
	assert.Contains(t, output, `"module":"gasdiff"`)
	assert.Contains(t, output, `"message":"line 3 collapsed"`)
	assert.Contains(t, output, `"transfer"`)
	assert.Equal(t, 1, strings.Count(output, "\n"))
}
