package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/model"
	"github.com/mj1618/axkit/internal/output"
	"github.com/mj1618/axkit/internal/platform"
)

// ElementRef is how an element appears in tool results.
type ElementRef struct {
	Handle  string `yaml:"handle"  json:"handle"`
	Element string `yaml:"element" json:"element"`
}

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := output.Render(v, output.FormatYAML, false)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) ref(el *ax.Element) ElementRef {
	return ElementRef{Handle: s.handles.Put(el), Element: el.String()}
}

// render converts v for output, registering any elements it contains.
func (s *Server) render(v ax.Value) interface{} {
	switch t := v.(type) {
	case *ax.Element:
		return s.ref(t)
	case ax.List:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = s.render(item)
		}
		return out
	default:
		return ax.Plain(v)
	}
}

// target resolves the element named by the common target arguments. A
// handle replaces the application selectors; path is walked from either.
// The caller must hold the provider mutex.
func (s *Server) target(request mcp.CallToolRequest) (*ax.Element, error) {
	if err := s.sys.CheckAccessibility(); err != nil {
		return nil, err
	}
	path := request.GetString("path", "")
	if id := request.GetString("handle", ""); id != "" {
		el, ok := s.handles.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown or expired handle %q", id)
		}
		if path == "" {
			return el, nil
		}
		return el.WalkElement(path)
	}
	return platform.Resolve(s.sys, platform.TargetOptions{
		PID:        request.GetInt("pid", 0),
		BundleID:   request.GetString("bundle", ""),
		App:        request.GetString("app", ""),
		SystemWide: request.GetBool("system_wide", false),
		Path:       path,
	})
}

func (s *Server) handleListApps(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	apps, err := s.sys.RunningApplications()
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(resultToText(apps)), nil
}

func (s *Server) handleAttributes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	el, err := s.target(request)
	if err != nil {
		return toolError(err), nil
	}
	attrs, err := el.AttributeNames()
	if err != nil {
		return toolError(err), nil
	}
	actions, err := el.ActionNames()
	if err != nil {
		return toolError(err), nil
	}
	var settable []string
	for _, name := range attrs {
		if ok, err := el.IsSettable(name); err == nil && ok {
			settable = append(settable, name)
		}
	}

	result := output.AttributesResult{
		Handle:     s.handles.Put(el),
		Element:    el.String(),
		Attributes: attrs,
		Actions:    actions,
		Settable:   settable,
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleGet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attribute, err := request.RequireString("attribute")
	if err != nil {
		return toolError(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	el, err := s.target(request)
	if err != nil {
		return toolError(err), nil
	}
	v, err := el.Get(attribute)
	if err != nil {
		return toolError(err), nil
	}
	s.log.Debug("get", "element", el.String(), "attribute", attribute)

	result := output.ValueResult{
		Element:   el.String(),
		Attribute: attribute,
		Value:     s.render(v),
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleSet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attribute, err := request.RequireString("attribute")
	if err != nil {
		return toolError(err), nil
	}
	text, err := request.RequireString("value")
	if err != nil {
		return toolError(err), nil
	}
	value, err := model.ParseValue(request.GetString("type", ""), text)
	if err != nil {
		return toolError(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	el, err := s.target(request)
	if err != nil {
		return toolError(err), nil
	}
	if err := el.Set(attribute, value); err != nil {
		return toolError(err), nil
	}
	s.log.Info("set", "element", el.String(), "attribute", attribute)

	return mcp.NewToolResultText(resultToText(output.ActionResult{
		OK:      true,
		Element: el.String(),
		Action:  "set " + attribute,
	})), nil
}

func (s *Server) handlePerform(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action := request.GetString("action", "press")

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	el, err := s.target(request)
	if err != nil {
		return toolError(err), nil
	}
	available, err := el.ActionNames()
	if err != nil {
		return toolError(err), nil
	}
	name := model.ActionName(action, available)
	if err := el.Perform(name); err != nil {
		return toolError(err), nil
	}
	s.log.Info("perform", "element", el.String(), "action", name)

	return mcp.NewToolResultText(resultToText(output.ActionResult{
		OK:      true,
		Element: el.String(),
		Action:  name,
	})), nil
}

func (s *Server) handleElementAt(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, err := request.RequireFloat("x")
	if err != nil {
		return toolError(err), nil
	}
	y, err := request.RequireFloat("y")
	if err != nil {
		return toolError(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	var origin *ax.Element
	if hasTarget(request) {
		origin, err = s.target(request)
	} else if err = s.sys.CheckAccessibility(); err == nil {
		origin, err = s.sys.SystemWide()
	}
	if err != nil {
		return toolError(err), nil
	}
	el, err := origin.ElementAtPosition(x, y)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(resultToText(s.ref(el))), nil
}

func hasTarget(request mcp.CallToolRequest) bool {
	for _, key := range []string{"handle", "pid", "bundle", "app", "system_wide", "path"} {
		if _, ok := request.GetArguments()[key]; ok {
			return true
		}
	}
	return false
}

func (s *Server) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := model.TreeOptions{
		SnapshotOptions: model.SnapshotOptions{
			Depth:    request.GetInt("depth", 0),
			MaxNodes: request.GetInt("max_nodes", 0),
		},
		Text:    request.GetString("text", ""),
		Focused: request.GetBool("focused", false),
	}
	if roles := request.GetString("roles", ""); roles != "" {
		for _, r := range strings.Split(roles, ",") {
			opts.Roles = append(opts.Roles, strings.TrimSpace(r))
		}
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	root, err := s.target(request)
	if err != nil {
		return toolError(err), nil
	}
	elements, err := model.Tree(root, opts)
	if err != nil {
		return toolError(err), nil
	}

	app, pid := "", 0
	if p, err := root.PID(); err == nil {
		pid = p
		if a, err := s.sys.FromPID(p); err == nil {
			if v, err := a.Get(ax.AttrTitle); err == nil {
				app = model.Text(v)
			}
		}
	}
	ts := time.Now().Unix()

	if request.GetBool("flat", false) {
		return mcp.NewToolResultText(resultToText(output.TreeFlatResult{
			App: app, PID: pid, TS: ts, Elements: model.FlattenElements(elements),
		})), nil
	}
	return mcp.NewToolResultText(resultToText(output.TreeResult{
		App: app, PID: pid, TS: ts, Elements: elements,
	})), nil
}
