package platform

import (
	"fmt"
	"runtime"

	"github.com/mj1618/axkit/ax"
)

// Provider bundles the native backends for the current OS.
type Provider struct {
	Gateway       ax.Gateway
	Directory     ax.Directory
	Clipboard     ClipboardManager
	Screenshotter Screenshotter
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("axkit is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 with cgo", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See macos/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// RequestPermissionsFunc is set by platform-specific packages via init().
// It triggers the OS accessibility permission prompt.
var RequestPermissionsFunc func()

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// System opens an ax.System over the provider's gateway and directory.
func (p *Provider) System(opts ...ax.Option) (*ax.System, error) {
	if p == nil || p.Gateway == nil {
		return nil, ErrUnsupported
	}
	return ax.Open(p.Gateway, p.Directory, opts...)
}
