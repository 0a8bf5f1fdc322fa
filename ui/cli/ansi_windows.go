//go:build windows

package cli

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI switches the Windows console into VT processing so the
// board colors render.
func EnableANSI() {
	stdout := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(stdout, &mode); err != nil {
		return
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	_ = windows.SetConsoleMode(stdout, mode)
}
