package model

// Element is a plain snapshot of one accessibility element, detached from the
// live tree so it can be printed or filtered.
type Element struct {
	ID          int       `yaml:"i"            json:"i"`            // Sequential integer ID
	Role        string    `yaml:"r"            json:"r"`            // Compact role code, or the raw AXRole
	Subrole     string    `yaml:"sr,omitempty" json:"sr,omitempty"` // Raw AXSubrole
	Title       string    `yaml:"t,omitempty"  json:"t,omitempty"`  // Visible label / title
	Value       string    `yaml:"v,omitempty"  json:"v,omitempty"`  // Current value
	Description string    `yaml:"d,omitempty"  json:"d,omitempty"`  // Accessibility description
	Bounds      [4]int    `yaml:"b"            json:"b"`            // [x, y, width, height]
	Focused     bool      `yaml:"f,omitempty"  json:"f,omitempty"`  // Has keyboard focus
	Enabled     *bool     `yaml:"e,omitempty"  json:"e,omitempty"`  // nil = enabled (omit); false = disabled (include)
	Selected    bool      `yaml:"s,omitempty"  json:"s,omitempty"`  // Is selected
	Actions     []string  `yaml:"a,omitempty"  json:"a,omitempty"`  // Available actions, short names
	Path        string    `yaml:"p,omitempty"  json:"p,omitempty"`  // Attribute path from the snapshot root
	Children    []Element `yaml:"c,omitempty"  json:"c,omitempty"`  // Child elements
}
