package model

import (
	"testing"

	"github.com/mj1618/axkit/ax"
)

func TestFlattenElements_Ancestry(t *testing.T) {
	elements := []Element{
		{
			ID: 1, Role: "window", Title: "Main",
			Children: []Element{
				{
					ID: 2, Role: "toolbar", Title: "Nav", Path: "AXChildren[0]",
					Children: []Element{
						{ID: 3, Role: "btn", Title: "Back", Path: "AXChildren[0].AXChildren[0]"},
					},
				},
			},
		},
	}
	result := FlattenElements(elements)
	if len(result) != 3 {
		t.Fatalf("expected 3 flat elements, got %d", len(result))
	}
	wantAncestry := []string{"window", "window > toolbar", "window > toolbar > btn"}
	wantPath := []string{"", "AXChildren[0]", "AXChildren[0].AXChildren[0]"}
	for i := range result {
		if result[i].Ancestry != wantAncestry[i] {
			t.Errorf("element %d: ancestry = %q, want %q", i, result[i].Ancestry, wantAncestry[i])
		}
		if result[i].Path != wantPath[i] {
			t.Errorf("element %d: path = %q, want %q", i, result[i].Path, wantPath[i])
		}
	}
}

func TestFlattenElements_DerivesMissingPaths(t *testing.T) {
	elements := []Element{
		{
			ID: 1, Role: "window",
			Children: []Element{
				{ID: 2, Role: "group", Children: []Element{
					{ID: 3, Role: "btn"},
					{ID: 4, Role: "btn"},
				}},
				// moved here by a filter; keeps its snapshot path
				{ID: 5, Role: "input", Path: "AXChildren[3].AXChildren[7]"},
			},
		},
	}
	want := []string{
		"",
		"AXChildren[0]",
		"AXChildren[0].AXChildren[0]",
		"AXChildren[0].AXChildren[1]",
		"AXChildren[3].AXChildren[7]",
	}
	result := FlattenElements(elements)
	if len(result) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(result))
	}
	for i := range want {
		if result[i].Path != want[i] {
			t.Errorf("element %d: path = %q, want %q", result[i].ID, result[i].Path, want[i])
		}
		if _, err := ax.ParsePath(result[i].Path); err != nil {
			t.Errorf("element %d: path %q does not parse: %v", result[i].ID, result[i].Path, err)
		}
	}
}

func TestFlattenElements_NoChildren(t *testing.T) {
	result := FlattenElements(nil)
	if len(result) != 0 {
		t.Errorf("expected 0 elements for nil input, got %d", len(result))
	}
}

func TestFlattenElements_PreservesFields(t *testing.T) {
	f := false
	elements := []Element{
		{
			ID:          1,
			Role:        "input",
			Subrole:     "AXSearchField",
			Title:       "Search",
			Value:       "hello",
			Description: "Search field",
			Bounds:      [4]int{100, 200, 300, 40},
			Focused:     true,
			Enabled:     &f,
			Selected:    true,
			Actions:     []string{"press"},
		},
	}
	result := FlattenElements(elements)
	if len(result) != 1 {
		t.Fatalf("expected 1 element, got %d", len(result))
	}
	el := result[0]
	if el.Title != "Search" || el.Value != "hello" || el.Description != "Search field" || el.Subrole != "AXSearchField" {
		t.Errorf("text fields not preserved: %+v", el)
	}
	if el.Bounds != [4]int{100, 200, 300, 40} {
		t.Errorf("unexpected bounds: %v", el.Bounds)
	}
	if !el.Focused || !el.Selected {
		t.Error("expected focused and selected")
	}
	if el.Enabled == nil || *el.Enabled != false {
		t.Error("expected enabled=false")
	}
	if len(el.Actions) != 1 || el.Actions[0] != "press" {
		t.Errorf("unexpected actions: %v", el.Actions)
	}
}

func TestFlattenElements_TraversalOrder(t *testing.T) {
	elements := []Element{
		{
			ID: 1, Role: "window",
			Children: []Element{
				{
					ID: 2, Role: "group",
					Children: []Element{
						{ID: 3, Role: "btn", Title: "A"},
					},
				},
				{ID: 4, Role: "btn", Title: "B"},
			},
		},
	}
	result := FlattenElements(elements)
	if len(result) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(result))
	}
	for i, want := range []int{1, 2, 3, 4} {
		if result[i].ID != want {
			t.Errorf("element %d: expected ID %d, got %d", i, want, result[i].ID)
		}
	}
}
