package shared

import (
	"errors"
	"testing"
)

func TestCopyToClipboard(t *testing.T) {
	origWrite, origUnsupported := writeClipboard, clipboardUnsupported
	t.Cleanup(func() {
		writeClipboard, clipboardUnsupported = origWrite, origUnsupported
	})

	t.Run("writes text", func(t *testing.T) {
		var got string
		clipboardUnsupported = func() bool { return false }
		writeClipboard = func(text string) error {
			got = text
			return nil
		}

		if err := CopyToClipboard("Water - Tyla"); err != nil {
			t.Fatalf("CopyToClipboard() error = %v", err)
		}
		if got != "Water - Tyla" {
			t.Errorf("clipboard got %q", got)
		}
	})

	t.Run("unsupported platform", func(t *testing.T) {
		clipboardUnsupported = func() bool { return true }
		if err := CopyToClipboard("x"); !errors.Is(err, ErrClipboard) {
			t.Errorf("expected ErrClipboard, got %v", err)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		clipboardUnsupported = func() bool { return false }
		writeClipboard = func(string) error { return errors.New("xclip exited 1") }
		if err := CopyToClipboard("x"); !errors.Is(err, ErrClipboard) {
			t.Errorf("expected ErrClipboard, got %v", err)
		}
	})
}
