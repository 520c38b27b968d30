//go:build !windows
// +build !windows

package colors

// EnableColor turns on ANSI coloring. Non-windows terminals are known to support ANSI escape codes.
func EnableColor() {
	enabled = true
}
