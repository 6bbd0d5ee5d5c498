//go:build js

package game

import (
	"errors"
	"syscall/js"
)

func setClipboardText(text string) error {
	cb := js.Global().Get("navigator").Get("clipboard")
	if cb.IsUndefined() || cb.IsNull() {
		return errors.New("clipboard API unavailable")
	}
	cb.Call("writeText", text)
	return nil
}
