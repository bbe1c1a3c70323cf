package shared

import (
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	writeClipboard       = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

// CopyToClipboard places text on the system clipboard.
//
// Requires xclip, xsel or wl-clipboard on Linux; pbcopy on macOS.
func CopyToClipboard(text string) error {
	if clipboardUnsupported() {
		return fmt.Errorf("%w: no clipboard utility found", ErrClipboard)
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}
