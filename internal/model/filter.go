package model

import "strings"

// FilterElements keeps elements whose role is in roles and whose bounds
// intersect bbox. Either filter may be empty. A non-matching element is
// replaced by its matching descendants, so matches keep their place in the
// tree.
func FilterElements(elements []Element, roles []string, bbox *[4]int) []Element {
	if len(roles) == 0 && bbox == nil {
		return elements
	}
	roleSet := make(map[string]bool, len(roles))
	for _, r := range ExpandRoles(roles) {
		roleSet[r] = true
	}
	return filterTree(elements, func(el Element) bool {
		roleMatch := len(roleSet) == 0 || roleSet[el.Role]
		bboxMatch := bbox == nil || boundsIntersect(el.Bounds, *bbox)
		return roleMatch && bboxMatch
	}, true)
}

// FilterByText keeps elements whose title, value or description contains
// text, case-insensitively, together with their ancestors.
func FilterByText(elements []Element, text string) []Element {
	if text == "" {
		return elements
	}
	textLower := strings.ToLower(text)
	return filterTree(elements, func(el Element) bool {
		return strings.Contains(strings.ToLower(el.Title), textLower) ||
			strings.Contains(strings.ToLower(el.Value), textLower) ||
			strings.Contains(strings.ToLower(el.Description), textLower)
	}, false)
}

// FilterByFocused keeps the focused element and its ancestors.
func FilterByFocused(elements []Element) []Element {
	return filterTree(elements, func(el Element) bool {
		return el.Focused
	}, false)
}

// filterTree applies match bottom-up. When promote is set a non-matching
// element is dropped and its surviving children take its place; otherwise it
// is kept as the ancestor of whatever survived below it.
func filterTree(elements []Element, match func(Element) bool, promote bool) []Element {
	var result []Element
	for _, el := range elements {
		children := filterTree(el.Children, match, promote)
		switch {
		case match(el):
			el.Children = children
			result = append(result, el)
		case len(children) == 0:
		case promote:
			result = append(result, children...)
		default:
			el.Children = children
			result = append(result, el)
		}
	}
	return result
}

// isEmptyGroup reports whether el is a group or other node with no title,
// value or description.
func isEmptyGroup(el Element) bool {
	return (el.Role == "group" || el.Role == "other") &&
		el.Title == "" && el.Value == "" && el.Description == ""
}

// PruneEmptyGroups removes anonymous group/other nodes and promotes their
// children to the parent. Structural containers make up most of a typical
// application tree.
func PruneEmptyGroups(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		children := PruneEmptyGroups(el.Children)
		if isEmptyGroup(el) {
			result = append(result, children...)
			continue
		}
		el.Children = children
		result = append(result, el)
	}
	return result
}

// boundsIntersect checks if two [x, y, width, height] rectangles overlap.
func boundsIntersect(a, b [4]int) bool {
	ax1, ay1, ax2, ay2 := a[0], a[1], a[0]+a[2], a[1]+a[3]
	bx1, by1, bx2, by2 := b[0], b[1], b[0]+b[2], b[1]+b[3]
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}
