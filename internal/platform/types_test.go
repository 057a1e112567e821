package platform

import "testing"

func TestParseBBox_Valid(t *testing.T) {
	b, err := ParseBBox("10,20,300,400")
	if err != nil {
		t.Fatal(err)
	}
	if b.X != 10 || b.Y != 20 || b.Width != 300 || b.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_WithSpaces(t *testing.T) {
	b, err := ParseBBox("10, 20, 300, 400")
	if err != nil {
		t.Fatal(err)
	}
	if b.X != 10 || b.Y != 20 || b.Width != 300 || b.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
	}
	for _, s := range tests {
		_, err := ParseBBox(s)
		if err == nil {
			t.Errorf("ParseBBox(%q) should fail", s)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 10, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{109.5, 59.5, true},
		{110, 30, false},
		{50, 60, false},
		{9.9, 30, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTargetOptionsValidate(t *testing.T) {
	valid := []TargetOptions{
		{},
		{PID: 42},
		{BundleID: "com.apple.Safari", Path: "AXWindows[0]"},
		{App: "Safari"},
		{Frontmost: true},
		{SystemWide: true},
	}
	for _, o := range valid {
		if err := o.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", o, err)
		}
	}

	invalid := []TargetOptions{
		{PID: 42, BundleID: "com.apple.Safari"},
		{App: "Safari", Frontmost: true},
		{SystemWide: true, PID: 1},
	}
	for _, o := range invalid {
		if err := o.Validate(); err == nil {
			t.Errorf("Validate(%+v) should fail", o)
		}
	}
}
