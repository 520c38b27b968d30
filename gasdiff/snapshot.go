package gasdiff

import (
	"strings"

	"github.com/crytic/forgekit/logging/colors"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSnapshots produces a line diff between two gas snapshots in the shape of `git diff` output without headers:
// unchanged lines start with a space, removed lines with "-" and added lines with "+". If colorize is true, removed
// and added lines are wrapped in red and green the way `git diff --color` renders them.
func DiffSnapshots(oldText string, newText string, colorize bool) []string {
	// A missing trailing newline would otherwise make the last line differ
	oldText, newText = terminateText(oldText), terminateText(newText)

	dmp := diffmatchpatch.New()

	// Diff based on lines
	runesOld, runesNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	lineDiffs := dmp.DiffMainRunes(runesOld, runesNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	// Decode a rune-string back to the original lines using the lineArray mapping
	decode := func(s string) []string {
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, strings.TrimRight(lineArray[idx], "\r\n"))
			}
		}
		return out
	}

	render := func(marker string, color colors.Color, line string) string {
		if !colorize {
			return marker + line
		}
		return colors.ForceColorize(marker+line, color)
	}

	// Removed lines are emitted before added lines within each change, as git does
	output := make([]string, 0)
	var removed, added []string
	flush := func() {
		for _, line := range removed {
			output = append(output, render("-", colors.RED, line))
		}
		for _, line := range added {
			output = append(output, render("+", colors.GREEN, line))
		}
		removed, added = nil, nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, line := range decode(d.Text) {
				output = append(output, " "+line)
			}
		case diffmatchpatch.DiffDelete:
			removed = append(removed, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			added = append(added, decode(d.Text)...)
		}
	}
	flush()

	return output
}

// terminateText appends a newline to non-empty text that does not end with one.
func terminateText(text string) string {
	if text != "" && !strings.HasSuffix(text, "\n") {
		return text + "\n"
	}
	return text
}
