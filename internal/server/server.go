// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xibo-tools/xibo-mcp/internal/config"
	"github.com/xibo-tools/xibo-mcp/internal/weather"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// Server wraps the MCP server with the shared CMS dependencies.
type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
	cms       *xibo.Client
	weather   *weather.Client
}

// New creates a new MCP server for the Xibo CMS tools. cms may be nil
// when no CMS URL is configured; tools then report a configuration
// failure instead of calling out.
func New(cfg *config.Config, cms *xibo.Client, weather *weather.Client) *Server {
	mcpServer := server.NewMCPServer(
		"xibo-cms-tools",
		"1.0.0",
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
	)

	return &Server{
		mcpServer: mcpServer,
		cfg:       cfg,
		cms:       cms,
		weather:   weather,
	}
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Config returns the process configuration.
func (s *Server) Config() *config.Config {
	return s.cfg
}

// CMS returns the CMS API client, or nil when unconfigured.
func (s *Server) CMS() *xibo.Client {
	return s.cms
}

// Weather returns the weather lookup client.
func (s *Server) Weather() *weather.Client {
	return s.weather
}

// AddTool is a convenience wrapper for adding tools.
func (s *Server) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, handler)
}
