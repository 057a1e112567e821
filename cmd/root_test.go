package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"apps", "attrs", "get", "set", "perform", "at", "tree",
		"launch", "terminate", "activate", "clipboard", "capture", "serve", "trusted",
	}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"format", "string"},
		{"pretty", "bool"},
		{"log-level", "string"},
		{"timeout", "duration"},
		{"config", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestTreeCommand_Flags(t *testing.T) {
	flags := treeCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"depth", "int"},
		{"max-nodes", "int"},
		{"roles", "string"},
		{"bbox", "string"},
		{"text", "string"},
		{"focused", "bool"},
		{"prune", "bool"},
		{"flat", "bool"},
		{"raw-roles", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestNegativeTimeout(t *testing.T) {
	newTestDesktop(t)
	if _, err := run(t, "apps", "--timeout", "-1s"); err == nil {
		t.Error("expected an error for a negative timeout")
	}
}
