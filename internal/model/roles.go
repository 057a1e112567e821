package model

import "github.com/mj1618/axkit/ax"

// RoleMap maps AXRole values to compact role codes.
var RoleMap = map[string]string{
	ax.RoleApplication: "app",
	ax.RoleSystemWide:  "system",
	ax.RoleWindow:      "window",
	ax.RoleSheet:       "dialog",
	ax.RoleButton:      "btn",
	ax.RolePopUpButton: "popup",
	ax.RoleCheckBox:    "chk",
	ax.RoleRadioButton: "radio",
	ax.RoleSlider:      "slider",
	ax.RoleStaticText:  "txt",
	ax.RoleTextField:   "input",
	ax.RoleTextArea:    "textarea",
	ax.RoleLink:        "lnk",
	ax.RoleImage:       "img",
	ax.RoleMenuBar:     "menubar",
	ax.RoleMenu:        "menu",
	ax.RoleMenuItem:    "menuitem",
	ax.RoleTabGroup:    "tab",
	ax.RoleList:        "list",
	ax.RoleTable:       "list",
	ax.RoleOutline:     "list",
	ax.RoleRow:         "row",
	ax.RoleCell:        "cell",
	ax.RoleGroup:       "group",
	ax.RoleSplitGroup:  "group",
	ax.RoleScrollArea:  "scroll",
	ax.RoleToolbar:     "toolbar",
	ax.RoleWebArea:     "web",
}

// SubroleMap maps AXSubrole values to codes that take precedence over the
// role's. A switch is an AXCheckBox and a search field an AXTextField, for
// instance, but they are told apart here.
var SubroleMap = map[string]string{
	ax.SubroleSearchField:     "search",
	ax.SubroleSecureTextField: "password",
	ax.SubroleSwitch:          "toggle",
	ax.SubroleCloseButton:     "winbtn",
	ax.SubroleMinimizeButton:  "winbtn",
	ax.SubroleZoomButton:      "winbtn",
	ax.SubroleFullScreen:      "winbtn",
	ax.SubroleDialog:          "dialog",
	ax.SubroleSystemDialog:    "dialog",
}

// MetaRoles name groups of compact codes usable in role filters.
var MetaRoles = map[string][]string{
	"text":        {"input", "textarea", "search", "password"},
	"interactive": {"btn", "popup", "chk", "toggle", "radio", "slider", "input", "textarea", "search", "password", "lnk", "menuitem"},
	"container":   {"window", "dialog", "group", "scroll", "tab", "toolbar", "list"},
}

// ExpandRoles replaces meta-roles with their codes and drops duplicates,
// keeping first-seen order.
func ExpandRoles(roles []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	for _, r := range roles {
		codes, ok := MetaRoles[r]
		if !ok {
			codes = []string{r}
		}
		for _, c := range codes {
			add(c)
		}
	}
	return out
}

// MapRole returns the compact code for an element's role and subrole, or
// "other".
func MapRole(role, subrole string) string {
	if code, ok := SubroleMap[subrole]; ok {
		return code
	}
	if code, ok := RoleMap[role]; ok {
		return code
	}
	return "other"
}
