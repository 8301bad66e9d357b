// Package main provides the entry point for the Xibo CMS MCP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/xibo-tools/xibo-mcp/internal/config"
	mcpserver "github.com/xibo-tools/xibo-mcp/internal/server"
	"github.com/xibo-tools/xibo-mcp/internal/tools"
	"github.com/xibo-tools/xibo-mcp/internal/weather"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

func main() {
	// stdout carries the MCP wire protocol; logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// A missing CMS URL is not fatal: tools report it per call.
	var cms *xibo.Client
	if cfg.HasCMS() {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL(),
		}
		cms, err = xibo.NewClient(
			cc.Client(context.Background()),
			cfg.APIURL(),
			xibo.WithLogger(logger),
			xibo.WithRateLimit(cfg.RequestsPerSecond),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create CMS client: %v\n", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("CMS URL is not configured; CMS tools will report a configuration error")
	}

	// Create MCP server
	s := mcpserver.New(cfg, cms, weather.NewClient(nil))

	// Register all tools
	tools.RegisterAll(s)

	// Start server with stdio transport
	if err := server.ServeStdio(s.MCPServer()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
