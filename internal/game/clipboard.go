package game

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// setClipboardText copies text to the OS clipboard.
func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
