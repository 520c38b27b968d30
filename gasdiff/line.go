package gasdiff

import (
	"regexp"
	"strings"
)

// LineKind describes how a single line of diff output participates in a diff.
type LineKind int

const (
	// LineOther describes hunk headers, file headers, blank lines and anything else that passes through unchanged.
	LineOther LineKind = iota
	// LineContext describes an unchanged line, rendered with a single leading space.
	LineContext
	// LineRemoved describes a line present only on the old side of the diff.
	LineRemoved
	// LineAdded describes a line present only on the new side of the diff.
	LineAdded
)

// String returns a short name for the LineKind, used in debug traces.
func (k LineKind) String() string {
	switch k {
	case LineContext:
		return "context"
	case LineRemoved:
		return "removed"
	case LineAdded:
		return "added"
	default:
		return "other"
	}
}

var (
	// ansiEscapeRegex matches ANSI SGR escape sequences such as "\x1b[31m" or "\x1b[m".
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	// coloredMinusRegex and coloredPlusRegex match a red "-" or green "+" at the start of a line or after whitespace.
	// git renders these as "\x1b[31m-" and "\x1b[32m+", optionally with extra attributes such as "\x1b[1;31m".
	coloredMinusRegex = regexp.MustCompile(`(^|\s)\x1b\[(?:[0-9]+;)*31m-`)
	coloredPlusRegex  = regexp.MustCompile(`(^|\s)\x1b\[(?:[0-9]+;)*32m\+`)

	// tableMinusRegex and tablePlusRegex match a diff marker glued to a table row, such as "-| name | 100 |".
	tableMinusRegex = regexp.MustCompile(`(^|\s)-\|`)
	tablePlusRegex  = regexp.MustCompile(`(^|\s)\+\|`)
)

// StripANSI removes all ANSI SGR escape sequences from the provided text.
func StripANSI(text string) string {
	return ansiEscapeRegex.ReplaceAllString(text, "")
}

// isRemoved returns true if the line is the old side of a change.
func isRemoved(line string) bool {
	if coloredMinusRegex.MatchString(line) {
		return true
	}
	clean := StripANSI(line)
	if tableMinusRegex.MatchString(clean) {
		return true
	}
	trimmed := strings.TrimLeft(clean, " \t")
	return strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "---")
}

// isAdded returns true if the line is the new side of a change.
func isAdded(line string) bool {
	if coloredPlusRegex.MatchString(line) {
		return true
	}
	clean := StripANSI(line)
	if tablePlusRegex.MatchString(clean) {
		return true
	}
	trimmed := strings.TrimLeft(clean, " \t")
	return strings.HasPrefix(trimmed, "+") && !strings.HasPrefix(trimmed, "+++")
}

// ClassifyLine determines the LineKind of a raw (possibly colorized) line of diff output. Removed takes precedence
// over added when a line matches both.
func ClassifyLine(line string) LineKind {
	switch {
	case isRemoved(line):
		return LineRemoved
	case isAdded(line):
		return LineAdded
	case strings.HasPrefix(line, " "):
		return LineContext
	default:
		return LineOther
	}
}

// NormalizeLine returns the form of a line used for comparisons: ANSI codes stripped, a single leading diff marker
// removed and surrounding whitespace trimmed.
func NormalizeLine(line string) string {
	clean := strings.TrimLeft(StripANSI(line), " \t")
	if strings.HasPrefix(clean, "-") || strings.HasPrefix(clean, "+") {
		clean = clean[1:]
	}
	return strings.TrimSpace(clean)
}

// collapseMarkerRegex matches leading whitespace, any ANSI codes and the "+" diff marker that follows them.
var collapseMarkerRegex = regexp.MustCompile(`^([ \t]*)(?:\x1b\[[0-9;]*m)*\+`)

// CollapseLine turns an added line into a context line by replacing its leading "+" marker, along with any ANSI
// color prefix in front of it, with a single space. Lines without a leading "+" marker are returned unchanged.
func CollapseLine(line string) string {
	return collapseMarkerRegex.ReplaceAllString(line, "${1} ")
}
