//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"github.com/sqweek/dialog"
)

// Confirm shows a blocking native yes/no dialog. The event loop stays
// suspended until the user answers.
func Confirm(title, message string) bool {
	return dialog.Message("%s", message).Title(title).YesNo()
}
