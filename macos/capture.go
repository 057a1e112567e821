//go:build darwin && cgo

package macos

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

static int axk_screen_capture_allowed(void) {
    return CGPreflightScreenCaptureAccess() ? 1 : 0;
}
*/
import "C"
import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/mj1618/axkit/internal/platform"
)

// CheckScreenRecordingPermission checks if the process has macOS screen recording permission.
func CheckScreenRecordingPermission() error {
	if C.axk_screen_capture_allowed() == 0 {
		return fmt.Errorf(
			"screen recording permission required\n\n" +
				"Grant permission at: System Settings > Privacy & Security > Screen Recording\n" +
				"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n" +
				"Then restart the terminal and try again.")
	}
	return nil
}

// Screenshotter captures screen regions through screencapture(1).
type Screenshotter struct{}

var _ platform.Screenshotter = (*Screenshotter)(nil)

// NewScreenshotter returns the screencapture-backed screenshotter.
func NewScreenshotter() *Screenshotter {
	return &Screenshotter{}
}

// CaptureRegion captures b at the display's native resolution, so on Retina
// screens the image is larger than b.
func (s *Screenshotter) CaptureRegion(b platform.Bounds) (image.Image, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("cannot capture empty region %dx%d", b.Width, b.Height)
	}
	if err := CheckScreenRecordingPermission(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "axkit-capture-*.png")
	if err != nil {
		return nil, err
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	region := fmt.Sprintf("%d,%d,%d,%d", b.X, b.Y, b.Width, b.Height)
	out, err := exec.Command("screencapture", "-x", "-t", "png", "-R", region, path).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("screencapture failed: %s (%w)", strings.TrimSpace(string(out)), err)
	}

	rf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer rf.Close()
	img, err := png.Decode(rf)
	if err != nil {
		return nil, fmt.Errorf("decode capture: %w", err)
	}
	return img, nil
}
