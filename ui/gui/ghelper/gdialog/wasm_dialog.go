//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"fmt"

	"syscall/js"
)

// Confirm uses the browser's native confirm dialog.
func Confirm(title, message string) bool {
	return js.Global().Call("confirm", fmt.Sprintf("%s\n\n%s", title, message)).Bool()
}
