// Package server exposes the accessibility library as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/mj1618/axkit/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	HandleTTL time.Duration
	Timeout   time.Duration
	Logger    *slog.Logger
}

// Server wraps the MCP server with the platform provider and element handles.
type Server struct {
	provider   *platform.Provider
	sys        *ax.System
	handles    *Handles
	providerMu sync.Mutex
	log        *slog.Logger
	mcp        *mcpserver.MCPServer
}

// New creates and configures an MCP server with all axkit tools.
func New(provider *platform.Provider, cfg Config) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	opts := []ax.Option{ax.WithLogger(log)}
	if cfg.Timeout > 0 {
		opts = append(opts, ax.WithTimeout(cfg.Timeout))
	}
	sys, err := provider.System(opts...)
	if err != nil {
		return nil, err
	}

	s := &Server{
		provider: provider,
		sys:      sys,
		handles:  NewHandles(cfg.HandleTTL),
		log:      log,
	}
	s.mcp = mcpserver.NewMCPServer("axkit", version.Version)
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.log.Info("mcp server starting", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// targetOptions are the arguments every element tool accepts.
func targetOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("handle", mcp.Description("Element handle returned by an earlier call")),
		mcp.WithNumber("pid", mcp.Description("Application process ID")),
		mcp.WithString("bundle", mcp.Description("Application bundle ID (e.g. 'com.apple.Safari')")),
		mcp.WithString("app", mcp.Description("Application name; shell wildcards allowed")),
		mcp.WithBoolean("system_wide", mcp.Description("Start from the system-wide element")),
		mcp.WithString("path", mcp.Description("Attribute path from the root, e.g. 'AXWindows[0].AXZoomButton'")),
	}
}

func tool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	all := append([]mcp.ToolOption{mcp.WithDescription(description)}, opts...)
	return mcp.NewTool(name, all...)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		tool("list_apps", "List running applications with their PIDs and bundle IDs"),
		s.handleListApps,
	)

	s.mcp.AddTool(
		tool("attributes", "List the attributes and actions an element supports. With no target, the frontmost application is used.",
			targetOptions()...),
		s.handleAttributes,
	)

	s.mcp.AddTool(
		tool("get", "Read one attribute of an element. Element values come back as handles.",
			append(targetOptions(),
				mcp.WithString("attribute", mcp.Description("Attribute name, e.g. 'AXTitle'"), mcp.Required()),
			)...),
		s.handleGet,
	)

	s.mcp.AddTool(
		tool("set", "Write one attribute of an element",
			append(targetOptions(),
				mcp.WithString("attribute", mcp.Description("Attribute name, e.g. 'AXValue'"), mcp.Required()),
				mcp.WithString("value", mcp.Description("Value to write"), mcp.Required()),
				mcp.WithString("type", mcp.Description("Value type: string, bool, int, float, point, size, range, rect (default: string)")),
			)...),
		s.handleSet,
	)

	s.mcp.AddTool(
		tool("perform", "Perform an accessibility action (press, raise, zoom, showmenu, ...) on an element",
			append(targetOptions(),
				mcp.WithString("action", mcp.Description("Action name, short or AX-prefixed (default: press)")),
			)...),
		s.handlePerform,
	)

	s.mcp.AddTool(
		tool("element_at", "Find the deepest element under a screen point",
			append(targetOptions(),
				mcp.WithNumber("x", mcp.Description("Screen X coordinate"), mcp.Required()),
				mcp.WithNumber("y", mcp.Description("Screen Y coordinate"), mcp.Required()),
			)...),
		s.handleElementAt,
	)

	s.mcp.AddTool(
		tool("tree", "Read the element tree below a target. Returns IDs, roles, titles, bounds and attribute paths.",
			append(targetOptions(),
				mcp.WithNumber("depth", mcp.Description("Max depth to traverse (0 = unlimited)")),
				mcp.WithNumber("max_nodes", mcp.Description("Max elements to read (0 = unlimited)")),
				mcp.WithString("roles", mcp.Description("Comma-separated roles to keep (e.g. 'btn,input')")),
				mcp.WithString("text", mcp.Description("Keep elements whose text contains this substring")),
				mcp.WithBoolean("focused", mcp.Description("Only return the focused element and its ancestors")),
				mcp.WithBoolean("flat", mcp.Description("Return a flat list with ancestry paths")),
			)...),
		s.handleTree,
	)
}
