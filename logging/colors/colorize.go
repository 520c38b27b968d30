package colors

import "fmt"

// enabled describes whether Colorize should emit ANSI escape codes.
var enabled bool

// Enabled returns whether ANSI coloring is currently enabled.
func Enabled() bool {
	return enabled
}

// DisableColor turns off ANSI coloring for all ColorFunc output.
func DisableColor() {
	enabled = false
}

// Colorize returns the string s wrapped in ANSI code c, or the plain string if coloring is disabled.
// Source: https://github.com/rs/zerolog/blob/4fff5db29c3403bc26dee9895e12a108aacc0203/console.go
func Colorize(s any, c Color) string {
	if !enabled {
		return fmt.Sprintf("%v", s)
	}
	return ForceColorize(s, c)
}

// ForceColorize returns the string s wrapped in ANSI code c regardless of whether coloring is enabled. It terminates
// the sequence with the short "\x1b[m" reset that git emits.
func ForceColorize(s any, c Color) string {
	return fmt.Sprintf("\x1b[%dm%v\x1b[m", c, s)
}
