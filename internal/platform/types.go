package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return &Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// Contains reports whether the point lies inside b.
func (b Bounds) Contains(x, y float64) bool {
	return x >= float64(b.X) && y >= float64(b.Y) &&
		x < float64(b.X+b.Width) && y < float64(b.Y+b.Height)
}

// TargetOptions selects the root element a command works on. Exactly one of
// PID, BundleID, App, Frontmost and SystemWide may be set.
type TargetOptions struct {
	PID        int    // Process ID (0 = unset)
	BundleID   string // Bundle identifier, e.g. com.apple.Safari
	App        string // Localized application name; shell wildcards allowed
	Frontmost  bool   // The application whose AXFrontmost is true
	SystemWide bool   // The system-wide element
	Path       string // Attribute path walked from the root, e.g. AXWindows[0].AXZoomButton
}

// Validate checks that at most one root selector is set.
func (o TargetOptions) Validate() error {
	n := 0
	if o.PID != 0 {
		n++
	}
	if o.BundleID != "" {
		n++
	}
	if o.App != "" {
		n++
	}
	if o.Frontmost {
		n++
	}
	if o.SystemWide {
		n++
	}
	if n > 1 {
		return fmt.Errorf("specify only one of --pid, --bundle, --app, --frontmost, --system-wide")
	}
	return nil
}
