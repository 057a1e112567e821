package model

import (
	"testing"

	"github.com/mj1618/axkit/ax"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind string
		text string
		want ax.Value
	}{
		{"", "hello", ax.String("hello")},
		{"string", "42", ax.String("42")},
		{"bool", "true", ax.Bool(true)},
		{"bool", " 0 ", ax.Bool(false)},
		{"int", "-7", ax.Int(-7)},
		{"float", "2.5", ax.Float(2.5)},
		{"point", "10, 20.5", ax.Point{X: 10, Y: 20.5}},
		{"size", "800,600", ax.Size{Width: 800, Height: 600}},
		{"range", "0,8", ax.Range{Location: 0, Length: 8}},
		{"rect", "1,2,3,4", ax.Rect{Origin: ax.Point{X: 1, Y: 2}, Size: ax.Size{Width: 3, Height: 4}}},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.kind, tt.text)
		if err != nil {
			t.Errorf("ParseValue(%q, %q) error: %v", tt.kind, tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseValue(%q, %q) = %#v, want %#v", tt.kind, tt.text, got, tt.want)
		}
	}
}

func TestParseValue_Invalid(t *testing.T) {
	tests := []struct {
		kind string
		text string
	}{
		{"bool", "yes please"},
		{"int", "1.5"},
		{"float", "abc"},
		{"point", "1"},
		{"size", "1,2,3"},
		{"range", "0.5,2"},
		{"rect", "1,2,x,4"},
		{"color", "red"},
	}
	for _, tt := range tests {
		if _, err := ParseValue(tt.kind, tt.text); err == nil {
			t.Errorf("ParseValue(%q, %q) succeeded, want error", tt.kind, tt.text)
		}
	}
}
