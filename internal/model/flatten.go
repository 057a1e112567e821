package model

// FlatElement is an element without children. Path addresses it from the
// snapshot root in ax.ParsePath syntax; Ancestry lists the compact roles
// above it.
type FlatElement struct {
	ID          int      `yaml:"i"            json:"i"`
	Role        string   `yaml:"r"            json:"r"`
	Subrole     string   `yaml:"sr,omitempty" json:"sr,omitempty"`
	Title       string   `yaml:"t,omitempty"  json:"t,omitempty"`
	Value       string   `yaml:"v,omitempty"  json:"v,omitempty"`
	Description string   `yaml:"d,omitempty"  json:"d,omitempty"`
	Bounds      [4]int   `yaml:"b"            json:"b"`
	Focused     bool     `yaml:"f,omitempty"  json:"f,omitempty"`
	Enabled     *bool    `yaml:"e,omitempty"  json:"e,omitempty"`
	Selected    bool     `yaml:"s,omitempty"  json:"s,omitempty"`
	Actions     []string `yaml:"a,omitempty"  json:"a,omitempty"`
	Path        string   `yaml:"p,omitempty"  json:"p,omitempty"`
	Ancestry    string   `yaml:"an,omitempty" json:"an,omitempty"`
}

// FlattenElements lists a tree in pre-order. Elements taken from a snapshot
// keep their recorded path, even after filtering moved them in the tree.
// Hand-built elements without one get AXChildren[i] steps appended to their
// parent's path.
func FlattenElements(elements []Element) []FlatElement {
	type frame struct {
		el       *Element
		path     string
		ancestry string
	}

	var out []FlatElement
	stack := make([]frame, 0, len(elements))
	for i := len(elements) - 1; i >= 0; i-- {
		stack = append(stack, frame{el: &elements[i]})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		el := f.el
		path := el.Path
		if path == "" {
			path = f.path
		}
		ancestry := el.Role
		if f.ancestry != "" {
			ancestry = f.ancestry + " > " + el.Role
		}
		out = append(out, FlatElement{
			ID:          el.ID,
			Role:        el.Role,
			Subrole:     el.Subrole,
			Title:       el.Title,
			Value:       el.Value,
			Description: el.Description,
			Bounds:      el.Bounds,
			Focused:     el.Focused,
			Enabled:     el.Enabled,
			Selected:    el.Selected,
			Actions:     el.Actions,
			Path:        path,
			Ancestry:    ancestry,
		})

		for i := len(el.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{el: &el.Children[i], path: childPath(path, i), ancestry: ancestry})
		}
	}
	return out
}
