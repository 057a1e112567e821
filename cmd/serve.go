package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/axkit/internal/logging"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/mj1618/axkit/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing axkit tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the accessibility
operations as tools: list_apps, attributes, get, set, perform, element_at and
tree. Elements returned by one call can be addressed in later calls by handle.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  axkit serve
  axkit serve --transport streamable-http --port 8080
  axkit serve --handle-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("handle-ttl", 600, "Seconds an unused element handle stays valid (0 = forever)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	handleTTL, _ := cmd.Flags().GetInt("handle-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		HandleTTL: time.Duration(handleTTL) * time.Second,
		Timeout:   messagingTimeout,
		Logger:    logging.Logger(),
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	srv, err := server.New(provider, cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return srv.Serve(cfg)
}
