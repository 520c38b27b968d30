package gasdiff

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/crytic/forgekit/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Line describes a single line of diff input along with its position and classification.
type Line struct {
	// Index is the zero-based position of the line in the input.
	Index int

	// Raw is the line as read, ANSI codes included, with trailing whitespace removed.
	Raw string

	// Kind is the classification of the line.
	Kind LineKind
}

// NewLines classifies the provided raw lines. Trailing whitespace is removed from each line.
func NewLines(rawLines []string) []Line {
	lines := make([]Line, len(rawLines))
	for i, raw := range rawLines {
		raw = strings.TrimRight(raw, " \t\r\n")
		lines[i] = Line{Index: i, Raw: raw, Kind: ClassifyLine(raw)}
	}
	return lines
}

// ReadLines reads all lines from the provided reader.
func ReadLines(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return lines, nil
}

// Result describes the output of a Filter pass.
type Result struct {
	// Lines are the retained and collapsed lines in input order.
	Lines []string

	// Exceeded indicates whether at least one retained difference exceeds tolerance.
	Exceeded bool
}

// Filter removes gas changes that are within tolerance from a (possibly colorized) diff of gas reports.
type Filter struct {
	// tolerance describes the bounds a change must exceed to be kept.
	tolerance Tolerance

	// logger describes the logger used for line-by-line tracing at debug level.
	logger *logging.Logger
}

// NewFilter creates a Filter with the provided tolerance. If logger is nil, a sub-logger of the global logger is used.
func NewFilter(tolerance Tolerance, logger *logging.Logger) *Filter {
	if logger == nil {
		logger = logging.GlobalLogger.NewSubLogger("module", logging.GASDIFF_SERVICE)
	}
	return &Filter{
		tolerance: tolerance,
		logger:    logger,
	}
}

// Tolerance returns the tolerance the Filter was created with.
func (f *Filter) Tolerance() Tolerance {
	return f.tolerance
}

// Apply filters the provided raw lines. Context and other lines pass through unchanged. Each contiguous run of
// removed/added lines is processed as a chunk: pairs within tolerance collapse into a single context line, while
// pairs exceeding tolerance and rows without a counterpart are kept and flag the result as exceeded.
func (f *Filter) Apply(rawLines []string) *Result {
	lines := NewLines(rawLines)
	result := &Result{Lines: make([]string, 0, len(lines))}

	tracing := f.logger.Level() <= zerolog.DebugLevel
	if tracing {
		for _, line := range lines {
			f.logger.Debug("line ", line.Index, " [", line.Kind, "]: ", quote(line.Raw))
		}
	}

	// Walk the lines once, alternating between scanning for a chunk and consuming one.
	for i := 0; i < len(lines); {
		if !lines[i].Kind.isChange() {
			result.Lines = append(result.Lines, lines[i].Raw)
			i++
			continue
		}

		// Collect the maximal run of removed/added lines
		j := i
		for j < len(lines) && lines[j].Kind.isChange() {
			j++
		}

		chunkLines, exceeded := f.applyChunk(lines[i:j])
		result.Lines = append(result.Lines, chunkLines...)
		result.Exceeded = result.Exceeded || exceeded
		i = j
	}

	if tracing {
		for i, line := range result.Lines {
			f.logger.Debug("output ", i, ": ", quote(line))
		}
	}
	return result
}

// isChange returns true for removed and added lines.
func (k LineKind) isChange() bool {
	return k == LineRemoved || k == LineAdded
}

// applyChunk processes a single chunk of removed/added lines and returns the lines to emit, in input order, along
// with whether any difference in the chunk exceeds tolerance.
func (f *Filter) applyChunk(chunk []Line) ([]string, bool) {
	exceeded := false

	// Bucket data rows by side and function name. Non-data rows are bucketed by side in scan order.
	removedRows := make(map[string]Line)
	addedRows := make(map[string]Line)
	removedNames := make([]string, 0)
	removedOther := make([]Line, 0)
	addedOther := make(map[string][]Line)

	for _, line := range chunk {
		row, ok := ParseGasRow(line.Raw)
		if !ok {
			if line.Kind == LineRemoved {
				removedOther = append(removedOther, line)
			} else {
				key := NormalizeLine(line.Raw)
				addedOther[key] = append(addedOther[key], line)
			}
			continue
		}

		rows := addedRows
		if line.Kind == LineRemoved {
			rows = removedRows
		}
		if previous, exists := rows[row.Name]; exists {
			// The earlier row loses its pairing slot, so it stays visible as a structural change.
			f.logger.Debug("line ", previous.Index, ": duplicate row for ", quote(row.Name), " kept")
			exceeded = true
		} else if line.Kind == LineRemoved {
			removedNames = append(removedNames, row.Name)
		}
		rows[row.Name] = line
	}

	// dropped marks indices that produce no output, collapsed maps an index to its replacement text
	dropped := make(map[int]bool)
	collapsed := make(map[int]string)

	// Pair data rows by function name
	for _, name := range removedNames {
		removedLine := removedRows[name]
		addedLine, ok := addedRows[name]
		if !ok {
			f.logger.Debug("line ", removedLine.Index, ": no added row for ", quote(name), ", kept")
			exceeded = true
			continue
		}
		delete(addedRows, name)

		if f.tolerance.ExceedsLines(removedLine.Raw, addedLine.Raw) {
			f.logger.Debug("lines ", removedLine.Index, " and ", addedLine.Index, ": ", quote(name), " exceeds tolerance")
			exceeded = true
			continue
		}

		f.logger.Debug("lines ", removedLine.Index, " and ", addedLine.Index, ": ", quote(name), " within tolerance, collapsed")
		collapsed[removedLine.Index] = CollapseLine(addedLine.Raw)
		dropped[addedLine.Index] = true
	}

	// Whatever remains on the added side has no removed counterpart
	unpaired := make([]Line, 0, len(addedRows))
	for _, addedLine := range addedRows {
		unpaired = append(unpaired, addedLine)
	}
	slices.SortFunc(unpaired, func(a, b Line) int { return a.Index - b.Index })
	for _, addedLine := range unpaired {
		f.logger.Debug("line ", addedLine.Index, ": no removed row, kept")
		exceeded = true
	}

	// Drop added non-data rows that duplicate a removed one exactly (same content and same raw length). This is a
	// heuristic: unrelated rows that happen to normalize to the same text with equal length are also paired.
	for _, removedLine := range removedOther {
		key := NormalizeLine(removedLine.Raw)
		candidates := addedOther[key]
		for k, addedLine := range candidates {
			if len(addedLine.Raw) != len(removedLine.Raw) {
				continue
			}
			f.logger.Debug("lines ", removedLine.Index, " and ", addedLine.Index, ": duplicate non-data row, dropped added")
			dropped[addedLine.Index] = true
			addedOther[key] = append(candidates[:k:k], candidates[k+1:]...)
			break
		}
	}

	// Emit in original order
	output := make([]string, 0, len(chunk))
	for _, line := range chunk {
		if dropped[line.Index] {
			continue
		}
		if text, ok := collapsed[line.Index]; ok {
			output = append(output, text)
			continue
		}
		output = append(output, line.Raw)
	}
	return output, exceeded
}

// quote renders a string with escapes visible, so ANSI codes show up in traces.
func quote(s string) string {
	return strconv.Quote(s)
}
