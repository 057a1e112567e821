package platform

import "image"

// ClipboardManager reads and writes the system clipboard.
type ClipboardManager interface {
	GetText() (string, error)
	SetText(text string) error
	Clear() error
}

// Screenshotter captures a rectangle of the screen, in screen points.
type Screenshotter interface {
	CaptureRegion(b Bounds) (image.Image, error)
}
