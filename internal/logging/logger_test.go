package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"off", LevelOff},
		{"", LevelWarn},
		{"verbose", LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigure(t *testing.T) {
	defer Configure(LevelOff, nil)

	var buf bytes.Buffer
	Configure(LevelInfo, &buf)
	Debug("hidden")
	Warn("shown", "pid", 42)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "pid=42") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestConfigure_Off(t *testing.T) {
	var buf bytes.Buffer
	Configure(LevelOff, &buf)
	Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
