//go:build darwin && cgo

package macos

import (
	"os"
	"reflect"
	"testing"

	"github.com/mj1618/axkit/ax"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  ax.Raw
	}{
		{"string", ax.RawString("hello, 世界")},
		{"true", ax.RawBoolean(true)},
		{"false", ax.RawBoolean(false)},
		{"float64", ax.NewRawNumber(ax.NumberFloat64, 2.5)},
		{"sint64", ax.NewRawInt(ax.NumberSInt64, -9000000000)},
		{"point", ax.NewRawPoint(10.5, -4)},
		{"size", ax.NewRawSize(640, 480)},
		{"rect", ax.NewRawRect(1, 2, 3, 4)},
		{"range", ax.NewRawRange(7, 3)},
		{"array", ax.RawArray{ax.RawString("a"), ax.RawArray{ax.RawBoolean(true)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := encode(tt.raw)
			if err != nil {
				t.Fatalf("encode(%#v): %v", tt.raw, err)
			}
			got := decode(v)
			release(v)
			if !reflect.DeepEqual(got, tt.raw) {
				t.Errorf("decode(encode(%#v)) = %#v", tt.raw, got)
			}
		})
	}
}

func TestEncodeRejectsForeignRefs(t *testing.T) {
	if _, err := encode(ax.RawElement{Ref: "not native"}); err == nil {
		t.Error("expected error encoding a foreign element ref")
	}
	if _, err := encode(ax.RawUnknown{Description: "CFDictionary"}); err == nil {
		t.Error("expected error encoding an unknown value without a handle")
	}
}

func TestApplicationRefEquality(t *testing.T) {
	g := NewGateway()
	a := g.ApplicationRef(os.Getpid())
	b := g.ApplicationRef(os.Getpid())
	if !g.Equal(a, b) {
		t.Error("two refs for the same pid should be equal")
	}
	if g.Equal(a, g.SystemWideRef()) {
		t.Error("application ref should not equal the system-wide ref")
	}
	if g.SystemWideRef() != g.SystemWideRef() {
		t.Error("system-wide ref should be created once")
	}
}

func TestPIDOfApplicationRef(t *testing.T) {
	g := NewGateway()
	pid, err := g.PID(g.ApplicationRef(os.Getpid()))
	if err != nil {
		t.Fatalf("PID: %v", err)
	}
	if pid != os.Getpid() {
		t.Errorf("PID = %d, want %d", pid, os.Getpid())
	}
}

func TestSystemWideAttributes(t *testing.T) {
	if !IsAccessibilityTrusted() {
		t.Skip("process is not trusted for accessibility")
	}
	sys, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sw, err := sys.SystemWide()
	if err != nil {
		t.Fatalf("SystemWide: %v", err)
	}
	role, err := sw.Get(ax.AttrRole)
	if err != nil {
		t.Fatalf("Get(AXRole): %v", err)
	}
	if role != ax.String("AXSystemWide") {
		t.Errorf("AXRole = %v, want AXSystemWide", role)
	}
}
