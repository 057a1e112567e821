package macos

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard implements platform.ClipboardManager with atotto/clipboard,
// falling back to pbcopy/pbpaste.
type Clipboard struct{}

// NewClipboard returns a new Clipboard instance.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// GetText reads the current text content from the system clipboard.
func (c *Clipboard) GetText() (string, error) {
	if text, err := clipboard.ReadAll(); err == nil {
		return text, nil
	}
	out, err := exec.Command("pbpaste").Output()
	if err != nil {
		return "", fmt.Errorf("pbpaste: %w", err)
	}
	return string(out), nil
}

// SetText writes text to the system clipboard.
func (c *Clipboard) SetText(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy: %w", err)
	}
	return nil
}

// Clear empties the system clipboard.
func (c *Clipboard) Clear() error {
	return c.SetText("")
}
