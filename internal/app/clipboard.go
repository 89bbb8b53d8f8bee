package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// copyBufferToClipboard copies one of the text buffers to the system
// clipboard and reports the result in the status bar.
func (m *Model) copyBufferToClipboard(name, content string) {
	if content == "" {
		m.status = fmt.Sprintf("No %s to copy", name)
		return
	}
	if err := clipboardWrite(content); err != nil {
		m.setStatusError("Clipboard copy failed", err, "buffer", name)
		return
	}
	m.status = fmt.Sprintf("Copied %s (%d chars)", name, len([]rune(content)))
}
