//go:build windows
// +build windows

package colors

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableColor will query the console mode of stdout and turn on ANSI coloring only if the console processes virtual
// terminal sequences.
func EnableColor() {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(os.Stdout.Fd()), &mode); err != nil {
		enabled = false
		return
	}
	enabled = mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0
}
