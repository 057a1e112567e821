package ax

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one hop of an attribute path: an attribute name, optionally
// followed by an index into the list it holds.
type Step struct {
	Name    string
	Index   int
	Indexed bool
}

func (s Step) String() string {
	if s.Indexed {
		return fmt.Sprintf("%s[%d]", s.Name, s.Index)
	}
	return s.Name
}

// ParsePath parses paths like "AXWindows[0].AXZoomButton". Negative indices
// count from the end. An empty path has no steps.
func ParsePath(path string) ([]Step, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	parts := strings.Split(path, ".")
	steps := make([]Step, 0, len(parts))
	for _, part := range parts {
		step, err := parseStep(part)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", path, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(part string) (Step, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if part == "" {
			return Step{}, fmt.Errorf("empty segment")
		}
		return Step{Name: part}, nil
	}
	if !strings.HasSuffix(part, "]") {
		return Step{}, fmt.Errorf("segment %q: missing ]", part)
	}
	name := part[:open]
	if name == "" {
		return Step{}, fmt.Errorf("segment %q: missing attribute name", part)
	}
	idx, err := strconv.Atoi(part[open+1 : len(part)-1])
	if err != nil {
		return Step{}, fmt.Errorf("segment %q: bad index: %w", part, err)
	}
	return Step{Name: name, Index: idx, Indexed: true}, nil
}

// Walk follows an attribute path from e and returns the value at its end. An
// empty path returns e itself.
func (e *Element) Walk(path string) (Value, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	var cur Value = e
	for i, step := range steps {
		el, ok := cur.(*Element)
		if !ok {
			return nil, fmt.Errorf("%s: %s is not an element", step, joinSteps(steps[:i]))
		}
		v, err := el.Get(step.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", joinSteps(steps[:i+1]), err)
		}
		if step.Indexed {
			list, ok := v.(List)
			if !ok {
				return nil, fmt.Errorf("%s: %s is not a list", joinSteps(steps[:i+1]), step.Name)
			}
			idx := step.Index
			if idx < 0 {
				idx += len(list)
			}
			if idx < 0 || idx >= len(list) {
				return nil, fmt.Errorf("%s: index out of range (len %d)", joinSteps(steps[:i+1]), len(list))
			}
			v = list[idx]
		}
		cur = v
	}
	return cur, nil
}

// WalkElement is Walk for paths that must end at an element.
func (e *Element) WalkElement(path string) (*Element, error) {
	v, err := e.Walk(path)
	if err != nil {
		return nil, err
	}
	el, ok := v.(*Element)
	if !ok {
		return nil, fmt.Errorf("path %q does not lead to an element", path)
	}
	return el, nil
}

func joinSteps(steps []Step) string {
	if len(steps) == 0 {
		return "<root>"
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
