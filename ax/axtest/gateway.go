// Package axtest provides an in-memory accessibility tree implementing
// ax.Gateway and ax.Directory, for tests that cannot talk to a real
// accessibility server.
package axtest

import (
	"fmt"
	"slices"
	"time"

	"github.com/mj1618/axkit/ax"
)

// Node is one fake accessibility element. Its *Node pointer is the ax.Ref the
// gateway hands out, so equality is pointer identity.
type Node struct {
	Label string
	PID   int

	gw        *Gateway
	attrOrder []string
	attrs     map[string]ax.Raw
	settable  map[string]bool
	actions   []string
	getErr    map[string]ax.Code
	setErr    map[string]ax.Code
	actionErr map[string]ax.Code
	invalid   bool

	// Performed records every action performed on the node, in order.
	Performed []string
	// Written records the last raw value written to each attribute.
	Written map[string]ax.Raw
}

func (n *Node) String() string {
	return fmt.Sprintf("node(%s)", n.Label)
}

// With adds an attribute holding raw. A nil raw makes the attribute exist but
// read as no-value.
func (n *Node) With(name string, raw ax.Raw) *Node {
	if _, ok := n.attrs[name]; !ok {
		n.attrOrder = append(n.attrOrder, name)
	}
	n.attrs[name] = raw
	return n
}

// WithString adds a string attribute.
func (n *Node) WithString(name, value string) *Node {
	return n.With(name, ax.RawString(value))
}

// WithRole sets AXRole.
func (n *Node) WithRole(role string) *Node {
	return n.WithString(ax.AttrRole, role)
}

// WithElements adds a list attribute of child nodes. Children without a PID
// inherit this node's.
func (n *Node) WithElements(name string, children ...*Node) *Node {
	arr := make(ax.RawArray, len(children))
	for i, c := range children {
		if c.PID == 0 {
			c.PID = n.PID
		}
		arr[i] = ax.RawElement{Ref: c}
	}
	return n.With(name, arr)
}

// WithElement adds an attribute holding a single element.
func (n *Node) WithElement(name string, child *Node) *Node {
	if child.PID == 0 {
		child.PID = n.PID
	}
	return n.With(name, ax.RawElement{Ref: child})
}

// WithFrame sets AXPosition and AXSize.
func (n *Node) WithFrame(x, y, width, height float64) *Node {
	n.With(ax.AttrPosition, ax.NewRawPoint(x, y))
	return n.With(ax.AttrSize, ax.NewRawSize(width, height))
}

// WithActions adds actions.
func (n *Node) WithActions(names ...string) *Node {
	n.actions = append(n.actions, names...)
	return n
}

// Settable marks attributes as writable.
func (n *Node) Settable(names ...string) *Node {
	for _, name := range names {
		n.settable[name] = true
	}
	return n
}

// FailGet makes reads of an attribute fail with code.
func (n *Node) FailGet(name string, code ax.Code) *Node {
	n.getErr[name] = code
	return n
}

// FailSet makes writes of an attribute fail with code.
func (n *Node) FailSet(name string, code ax.Code) *Node {
	n.setErr[name] = code
	return n
}

// FailAction makes an action fail with code.
func (n *Node) FailAction(name string, code ax.Code) *Node {
	n.actionErr[name] = code
	return n
}

// Invalidate simulates the UI element being destroyed.
func (n *Node) Invalidate() {
	n.invalid = true
}

// Value returns the raw value currently stored for an attribute.
func (n *Node) Value(name string) ax.Raw {
	return n.attrs[name]
}

// Gateway is an in-memory ax.Gateway. It is not safe for concurrent use.
type Gateway struct {
	nodes      []*Node
	apps       map[int]*Node
	systemWide *Node

	// Calls counts gateway calls by method name.
	Calls map[string]int
	// Timeouts records the last messaging timeout set per node.
	Timeouts map[*Node]time.Duration
	// ListErr, when non-zero, makes AttributeNames and ActionNames fail.
	ListErr ax.Code
}

var _ ax.Gateway = (*Gateway)(nil)

// NewGateway returns an empty tree with a system-wide element.
func NewGateway() *Gateway {
	g := &Gateway{
		apps:     make(map[int]*Node),
		Calls:    make(map[string]int),
		Timeouts: make(map[*Node]time.Duration),
	}
	g.systemWide = g.Node("system-wide").WithRole("AXSystemWide")
	return g
}

// Node creates a detached node.
func (g *Gateway) Node(label string) *Node {
	n := &Node{
		Label:     label,
		gw:        g,
		attrs:     make(map[string]ax.Raw),
		settable:  make(map[string]bool),
		getErr:    make(map[string]ax.Code),
		setErr:    make(map[string]ax.Code),
		actionErr: make(map[string]ax.Code),
		Written:   make(map[string]ax.Raw),
	}
	g.nodes = append(g.nodes, n)
	return n
}

// App returns the application node for pid, creating it with role
// AXApplication and the given title.
func (g *Gateway) App(pid int, title string) *Node {
	n := g.appNode(pid)
	n.Label = title
	return n.WithRole("AXApplication").WithString(ax.AttrTitle, title)
}

// SystemWide returns the system-wide node.
func (g *Gateway) SystemWide() *Node {
	return g.systemWide
}

func (g *Gateway) appNode(pid int) *Node {
	if n, ok := g.apps[pid]; ok {
		return n
	}
	n := g.Node(fmt.Sprintf("app-%d", pid))
	n.PID = pid
	g.apps[pid] = n
	return n
}

func (g *Gateway) node(ref ax.Ref) (*Node, error) {
	n, ok := ref.(*Node)
	if !ok || n == nil {
		return nil, ax.ErrorFromCode(ax.CodeIllegalArgument, "not a node reference")
	}
	if n.invalid {
		return nil, ax.ErrorFromCode(ax.CodeInvalidUIElement, "element no longer exists")
	}
	return n, nil
}

func (g *Gateway) AttributeNames(ref ax.Ref) ([]string, error) {
	g.Calls["AttributeNames"]++
	n, err := g.node(ref)
	if err != nil {
		return nil, err
	}
	if g.ListErr != ax.CodeSuccess {
		return nil, ax.ErrorFromCode(g.ListErr, "copy attribute names")
	}
	return slices.Clone(n.attrOrder), nil
}

func (g *Gateway) ActionNames(ref ax.Ref) ([]string, error) {
	g.Calls["ActionNames"]++
	n, err := g.node(ref)
	if err != nil {
		return nil, err
	}
	if g.ListErr != ax.CodeSuccess {
		return nil, ax.ErrorFromCode(g.ListErr, "copy action names")
	}
	return slices.Clone(n.actions), nil
}

func (g *Gateway) AttributeValue(ref ax.Ref, name string) (ax.Raw, error) {
	g.Calls["AttributeValue"]++
	n, err := g.node(ref)
	if err != nil {
		return nil, err
	}
	if code, ok := n.getErr[name]; ok {
		return nil, ax.ErrorFromCode(code, "copy attribute value "+name)
	}
	raw, ok := n.attrs[name]
	if !ok {
		return nil, ax.ErrorFromCode(ax.CodeAttributeUnsupported, "copy attribute value "+name)
	}
	if raw == nil {
		return nil, ax.ErrorFromCode(ax.CodeNoValue, "copy attribute value "+name)
	}
	return raw, nil
}

func (g *Gateway) IsAttributeSettable(ref ax.Ref, name string) (bool, error) {
	g.Calls["IsAttributeSettable"]++
	n, err := g.node(ref)
	if err != nil {
		return false, err
	}
	if _, ok := n.attrs[name]; !ok {
		return false, ax.ErrorFromCode(ax.CodeAttributeUnsupported, "is attribute settable "+name)
	}
	return n.settable[name], nil
}

func (g *Gateway) SetAttributeValue(ref ax.Ref, name string, value ax.Raw) error {
	g.Calls["SetAttributeValue"]++
	n, err := g.node(ref)
	if err != nil {
		return err
	}
	if code, ok := n.setErr[name]; ok {
		return ax.ErrorFromCode(code, "set attribute value "+name)
	}
	if !n.settable[name] {
		return ax.ErrorFromCode(ax.CodeAttributeUnsupported, "set attribute value "+name)
	}
	n.Written[name] = value
	n.attrs[name] = value
	return nil
}

func (g *Gateway) PerformAction(ref ax.Ref, name string) error {
	g.Calls["PerformAction"]++
	n, err := g.node(ref)
	if err != nil {
		return err
	}
	if code, ok := n.actionErr[name]; ok {
		return ax.ErrorFromCode(code, "perform action "+name)
	}
	if !slices.Contains(n.actions, name) {
		return ax.ErrorFromCode(ax.CodeActionUnsupported, "perform action "+name)
	}
	n.Performed = append(n.Performed, name)
	return nil
}

// ElementAtPosition returns the smallest node whose frame contains the point.
func (g *Gateway) ElementAtPosition(ref ax.Ref, x, y float64) (ax.Ref, error) {
	g.Calls["ElementAtPosition"]++
	if _, err := g.node(ref); err != nil {
		return nil, err
	}
	var best *Node
	bestArea := -1.0
	for _, n := range g.nodes {
		if n.invalid {
			continue
		}
		pos, okPos := n.attrs[ax.AttrPosition].(ax.RawStruct)
		size, okSize := n.attrs[ax.AttrSize].(ax.RawStruct)
		if !okPos || !okSize {
			continue
		}
		p, okP := ax.NewConverter(nil).Convert(pos).(ax.Point)
		s, okS := ax.NewConverter(nil).Convert(size).(ax.Size)
		if !okP || !okS {
			continue
		}
		if x < p.X || y < p.Y || x >= p.X+s.Width || y >= p.Y+s.Height {
			continue
		}
		if area := s.Width * s.Height; best == nil || area < bestArea {
			best, bestArea = n, area
		}
	}
	if best == nil {
		return nil, ax.ErrorFromCode(ax.CodeNoValue, "no element at position")
	}
	return best, nil
}

func (g *Gateway) PID(ref ax.Ref) (int, error) {
	g.Calls["PID"]++
	n, err := g.node(ref)
	if err != nil {
		return 0, err
	}
	return n.PID, nil
}

func (g *Gateway) SetMessagingTimeout(ref ax.Ref, timeout time.Duration) error {
	g.Calls["SetMessagingTimeout"]++
	n, err := g.node(ref)
	if err != nil {
		return err
	}
	if timeout < 0 {
		return ax.ErrorFromCode(ax.CodeIllegalArgument, "negative timeout")
	}
	g.Timeouts[n] = timeout
	return nil
}

func (g *Gateway) Equal(a, b ax.Ref) bool {
	g.Calls["Equal"]++
	na, okA := a.(*Node)
	nb, okB := b.(*Node)
	return okA && okB && na == nb
}

func (g *Gateway) ApplicationRef(pid int) ax.Ref {
	return g.appNode(pid)
}

func (g *Gateway) SystemWideRef() ax.Ref {
	return g.systemWide
}
