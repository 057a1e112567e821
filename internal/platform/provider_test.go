package platform

import (
	"runtime"
	"testing"

	"github.com/mj1618/axkit/ax/axtest"
)

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("skipping on non-darwin")
	}
	// The macos package may or may not be linked into the test binary, so
	// only check that the call doesn't panic.
	_, _ = NewProvider()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_UsesRegisteredFunc(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	gw := axtest.NewGateway()
	NewProviderFunc = func() (*Provider, error) {
		return &Provider{Gateway: gw, Directory: axtest.NewDirectory()}, nil
	}

	p, err := NewProvider()
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	sys, err := p.System()
	if err != nil {
		t.Fatalf("System: %v", err)
	}
	if !sys.AccessibilityEnabled() {
		t.Error("expected the fake directory to report trusted")
	}
}

func TestProviderSystem_NoGateway(t *testing.T) {
	var p *Provider
	if _, err := p.System(); err != ErrUnsupported {
		t.Errorf("nil provider System() err = %v, want ErrUnsupported", err)
	}
}
