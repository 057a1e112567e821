package model

import "testing"

func TestTree(t *testing.T) {
	sys, _ := newTree(t)
	root, err := sys.FromPID(10)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		opts     TreeOptions
		wantTop  int
		wantRole string
	}{
		{"unfiltered", TreeOptions{}, 1, "app"},
		{"roles promote matches", TreeOptions{Roles: []string{"btn"}}, 1, "btn"},
		{"text keeps ancestors", TreeOptions{Text: "MILK"}, 1, "app"},
		{"focused keeps ancestors", TreeOptions{Focused: true}, 1, "app"},
		{"no match", TreeOptions{Roles: []string{"img"}}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements, err := Tree(root, tt.opts)
			if err != nil {
				t.Fatalf("Tree: %v", err)
			}
			if elements == nil {
				t.Fatal("Tree returned nil slice")
			}
			if len(elements) != tt.wantTop {
				t.Fatalf("got %d top-level elements, want %d", len(elements), tt.wantTop)
			}
			if tt.wantTop > 0 && elements[0].Role != tt.wantRole {
				t.Errorf("top role = %q, want %q", elements[0].Role, tt.wantRole)
			}
		})
	}
}

func TestTree_TextPathReachesMatch(t *testing.T) {
	sys, _ := newTree(t)
	root, err := sys.FromPID(10)
	if err != nil {
		t.Fatal(err)
	}
	elements, err := Tree(root, TreeOptions{Text: "milk"})
	if err != nil {
		t.Fatal(err)
	}
	flat := FlattenElements(elements)
	last := flat[len(flat)-1]
	if last.Value != "milk" || last.Path != "AXChildren[0].AXChildren[2]" {
		t.Errorf("last = %+v", last)
	}
}

func TestTree_RootFailure(t *testing.T) {
	sys, gw := newTree(t)
	root, err := sys.FromPID(10)
	if err != nil {
		t.Fatal(err)
	}
	gw.App(10, "Notes").Invalidate()
	if _, err := Tree(root, TreeOptions{}); err == nil {
		t.Error("expected error for invalid root")
	}
}
