//go:build darwin && cgo

package macos

import (
	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Gateway:       NewGateway(),
			Directory:     NewDirectory(),
			Clipboard:     NewClipboard(),
			Screenshotter: NewScreenshotter(),
		}, nil
	}
	platform.RequestPermissionsFunc = func() {
		RequestAccessibilityPermission()
	}
}

// Open returns an ax.System bound to the native gateway and NSWorkspace.
func Open(opts ...ax.Option) (*ax.System, error) {
	return ax.Open(NewGateway(), NewDirectory(), opts...)
}
