package model

import "strings"

// ActionMap maps AX action names to short names.
var ActionMap = map[string]string{
	"AXPress":      "press",
	"AXCancel":     "cancel",
	"AXPick":       "pick",
	"AXIncrement":  "increment",
	"AXDecrement":  "decrement",
	"AXConfirm":    "confirm",
	"AXShowMenu":   "showmenu",
	"AXRaise":      "raise",
	"AXZoomWindow": "zoom",
}

// ShortAction converts an AX action name to its short name. Unmapped names
// lose the AX prefix and are lowercased.
func ShortAction(axAction string) string {
	if short, ok := ActionMap[axAction]; ok {
		return short
	}
	return strings.ToLower(strings.TrimPrefix(axAction, "AX"))
}

// ActionName converts a short action name back to the AX name. Names outside
// ActionMap are matched against available, the element's live action names.
// Names that already carry the AX prefix pass through unchanged.
func ActionName(short string, available []string) string {
	if strings.HasPrefix(short, "AX") {
		return short
	}
	lower := strings.ToLower(short)
	for _, a := range available {
		if ShortAction(a) == lower {
			return a
		}
	}
	for axName, s := range ActionMap {
		if s == lower {
			return axName
		}
	}
	return short
}
