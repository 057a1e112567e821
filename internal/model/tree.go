package model

import "github.com/mj1618/axkit/ax"

// TreeOptions combines a snapshot with the filters applied to it.
type TreeOptions struct {
	SnapshotOptions
	Roles   []string // Keep only these roles (meta roles expand)
	BBox    *[4]int  // Keep only elements intersecting this rectangle
	Text    string   // Keep elements whose text contains this substring
	Focused bool     // Keep only the focused element
	Prune   bool     // Drop anonymous groups
}

// Tree snapshots root and applies opts' filters in order: roles and bbox,
// then text, then focus, then pruning.
func Tree(root *ax.Element, opts TreeOptions) ([]Element, error) {
	snap, err := Snapshot(root, opts.SnapshotOptions)
	if err != nil {
		return nil, err
	}
	elements := []Element{snap}
	elements = FilterElements(elements, opts.Roles, opts.BBox)
	elements = FilterByText(elements, opts.Text)
	if opts.Focused {
		elements = FilterByFocused(elements)
	}
	if opts.Prune {
		elements = PruneEmptyGroups(elements)
	}
	if elements == nil {
		elements = []Element{}
	}
	return elements, nil
}
