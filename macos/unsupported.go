//go:build !darwin || !cgo

package macos

import (
	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/platform"
)

// Open fails: the accessibility API exists only on macOS with CGo.
func Open(opts ...ax.Option) (*ax.System, error) {
	return nil, platform.ErrUnsupported
}

// IsAccessibilityTrusted is always false off macOS.
func IsAccessibilityTrusted() bool {
	return false
}

// RequestAccessibilityPermission is a no-op off macOS.
func RequestAccessibilityPermission() bool {
	return false
}
