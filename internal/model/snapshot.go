package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mj1618/axkit/ax"
)

// SnapshotOptions controls how much of the live tree Snapshot reads.
type SnapshotOptions struct {
	Depth    int  // Max depth below the root (0 = unlimited)
	MaxNodes int  // Stop after this many elements (0 = unlimited)
	RawRoles bool // Keep AXRole names instead of compact codes
}

// Snapshot reads root and its AXChildren subtree into plain Elements. IDs are
// assigned depth-first from 1. Attributes an element lacks are left empty and
// children that fail to read, usually because they vanished mid-walk, are
// skipped. Only failures on the root itself are returned.
func Snapshot(root *ax.Element, opts SnapshotOptions) (Element, error) {
	if _, err := root.AttributeNames(); err != nil {
		return Element{}, fmt.Errorf("read root: %w", err)
	}
	s := &snapshotter{opts: opts}
	return s.walk(root, "", 0), nil
}

type snapshotter struct {
	opts SnapshotOptions
	next int
}

func (s *snapshotter) full() bool {
	return s.opts.MaxNodes > 0 && s.next >= s.opts.MaxNodes
}

func (s *snapshotter) walk(el *ax.Element, path string, depth int) Element {
	s.next++
	out := read(el, s.opts.RawRoles)
	out.ID = s.next
	out.Path = path

	if s.opts.Depth > 0 && depth >= s.opts.Depth {
		return out
	}
	children, err := el.Elements(ax.AttrChildren)
	if err != nil {
		return out
	}
	for i, child := range children {
		if s.full() {
			break
		}
		if _, err := child.AttributeNames(); err != nil {
			continue
		}
		out.Children = append(out.Children, s.walk(child, childPath(path, i), depth+1))
	}
	return out
}

func childPath(parent string, i int) string {
	step := ax.Step{Name: ax.AttrChildren, Index: i, Indexed: true}.String()
	if parent == "" {
		return step
	}
	return parent + "." + step
}

// read fills every field but ID, Path and Children.
func read(el *ax.Element, rawRoles bool) Element {
	role := Text(get(el, ax.AttrRole))
	subrole := Text(get(el, ax.AttrSubrole))
	out := Element{
		Role:        MapRole(role, subrole),
		Subrole:     subrole,
		Title:       Text(get(el, ax.AttrTitle)),
		Value:       Text(get(el, ax.AttrValue)),
		Description: Text(get(el, ax.AttrDescription)),
		Bounds:      Bounds(get(el, ax.AttrPosition), get(el, ax.AttrSize)),
		Focused:     isTrue(get(el, ax.AttrFocused)),
		Selected:    isTrue(get(el, ax.AttrSelected)),
	}
	if rawRoles {
		out.Role = role
	}
	if b, ok := get(el, ax.AttrEnabled).(ax.Bool); ok && !bool(b) {
		disabled := false
		out.Enabled = &disabled
	}
	if actions, err := el.ActionNames(); err == nil {
		for _, a := range actions {
			out.Actions = append(out.Actions, ShortAction(a))
		}
	}
	return out
}

// get reads an attribute, treating any failure as absent.
func get(el *ax.Element, name string) ax.Value {
	v, err := el.Get(name)
	if err != nil {
		return nil
	}
	return v
}

func isTrue(v ax.Value) bool {
	b, ok := v.(ax.Bool)
	return ok && bool(b)
}

// Text renders scalar values as display text. Lists, elements and opaque
// values render empty.
func Text(v ax.Value) string {
	switch t := v.(type) {
	case ax.String:
		return string(t)
	case ax.Bool:
		return strconv.FormatBool(bool(t))
	case ax.Int:
		return strconv.FormatInt(int64(t), 10)
	case ax.Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case ax.Point, ax.Size, ax.Range, ax.Rect:
		return fmt.Sprintf("%+v", t)
	}
	return ""
}

// Bounds combines AXPosition and AXSize into [x, y, width, height]. Missing
// or mistyped values give zeros.
func Bounds(position, size ax.Value) [4]int {
	var b [4]int
	if p, ok := position.(ax.Point); ok {
		b[0], b[1] = round(p.X), round(p.Y)
	}
	if s, ok := size.(ax.Size); ok {
		b[2], b[3] = round(s.Width), round(s.Height)
	}
	return b
}

func round(f float64) int {
	return int(math.Round(f))
}
