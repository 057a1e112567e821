package platform

import (
	"errors"
	"testing"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/ax/axtest"
)

func newTestSystem(t *testing.T) (*ax.System, *axtest.Gateway) {
	t.Helper()
	gw := axtest.NewGateway()
	app := gw.App(7, "Safari").With(ax.AttrFrontmost, ax.RawBoolean(true))
	win := gw.Node("win").WithRole("AXWindow").WithString(ax.AttrTitle, "Start Page")
	app.WithElements(ax.AttrWindows, win)

	dir := axtest.NewDirectory(ax.Application{PID: 7, BundleID: "com.apple.Safari", LocalizedName: "Safari"})
	sys, err := ax.Open(gw, dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return sys, gw
}

func TestResolve(t *testing.T) {
	sys, gw := newTestSystem(t)
	app := gw.App(7, "Safari")

	tests := []struct {
		name string
		opts TargetOptions
		want ax.Ref
	}{
		{"pid", TargetOptions{PID: 7}, app},
		{"bundle", TargetOptions{BundleID: "com.apple.Safari"}, app},
		{"name glob", TargetOptions{App: "Saf*"}, app},
		{"frontmost", TargetOptions{Frontmost: true}, app},
		{"default is frontmost", TargetOptions{}, app},
		{"system-wide", TargetOptions{SystemWide: true}, gw.SystemWide()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := Resolve(sys, tt.opts)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if el.Ref() != tt.want {
				t.Errorf("Resolve(%+v) = %v, want %v", tt.opts, el.Ref(), tt.want)
			}
		})
	}
}

func TestResolve_Path(t *testing.T) {
	sys, _ := newTestSystem(t)

	el, err := Resolve(sys, TargetOptions{PID: 7, Path: "AXWindows[0]"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	title, err := el.Get(ax.AttrTitle)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if title != ax.String("Start Page") {
		t.Errorf("title = %v, want Start Page", title)
	}

	if _, err := Resolve(sys, TargetOptions{PID: 7, Path: "AXWindows[4]"}); err == nil {
		t.Error("expected out-of-range path to fail")
	}
}

func TestResolve_NotFound(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := Resolve(sys, TargetOptions{BundleID: "com.example.none"})
	if !errors.Is(err, ax.ErrAppNotFound) {
		t.Errorf("err = %v, want ErrAppNotFound", err)
	}
	if _, err := Resolve(sys, TargetOptions{PID: 7, App: "Safari"}); err == nil {
		t.Error("expected conflicting selectors to fail")
	}
}
