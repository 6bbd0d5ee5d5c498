//go:build !js

package game

import "github.com/atotto/clipboard"

func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
