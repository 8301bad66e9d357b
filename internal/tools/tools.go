// Package tools provides MCP tool implementations wrapping the Xibo CMS
// REST API. Every handler terminates in a success or failure envelope;
// errors never cross the tool boundary as exceptions.
package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/config"
	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	mcpserver "github.com/xibo-tools/xibo-mcp/internal/server"
	"github.com/xibo-tools/xibo-mcp/internal/weather"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// ToolServer holds the dependencies for tool handlers.
type ToolServer struct {
	server  *mcpserver.Server
	cfg     *config.Config
	cms     *xibo.Client
	weather *weather.Client
}

// RegisterAll registers all tools with the MCP server.
func RegisterAll(s *mcpserver.Server) {
	ts := &ToolServer{
		server:  s,
		cfg:     s.Config(),
		cms:     s.CMS(),
		weather: s.Weather(),
	}

	// Dataset tools
	ts.registerListDatasets()
	ts.registerGetDataset()
	ts.registerAddDataset()
	ts.registerEditDataset()
	ts.registerDeleteDataset()
	ts.registerAddDatasetColumn()
	ts.registerGetDatasetData()
	ts.registerEditDatasetRss()

	// Folder tools
	ts.registerListFolders()
	ts.registerAddFolder()
	ts.registerDeleteFolder()

	// User tools
	ts.registerListUsers()
	ts.registerGetUser()

	// Notification tools
	ts.registerListNotifications()
	ts.registerAddNotification()
	ts.registerDeleteNotification()

	// Resolution tools
	ts.registerListResolutions()
	ts.registerAddResolution()
	ts.registerDeleteResolution()

	// Display tools
	ts.registerListDisplays()
	ts.registerAuthorizeDisplay()
	ts.registerWakeDisplay()
	ts.registerSendDisplayCommand()

	// Font and library tools
	ts.registerListFonts()
	ts.registerUploadFont()
	ts.registerDownloadFont()
	ts.registerDeleteFont()
	ts.registerListMedia()
	ts.registerUploadMedia()
	ts.registerDeleteMedia()

	// Weather tools
	ts.registerGetWeather()
	ts.registerGetWeatherByName()
}

// cmsClient returns the CMS client, or the configuration failure
// envelope when no CMS URL was configured. The check happens before any
// network call.
func (ts *ToolServer) cmsClient() (*xibo.Client, *envelope.Result) {
	if ts.cms == nil {
		return nil, envelope.ConfigFailure()
	}
	return ts.cms, nil
}

// result renders an envelope as a tool result. Failure envelopes are
// flagged as errors but still carry the full envelope JSON so the agent
// can inspect message, error kind and errorData.
func result(env *envelope.Result) *mcp.CallToolResult {
	if env.Success {
		return mcp.NewToolResultText(env.JSON())
	}
	return mcp.NewToolResultError(env.JSON())
}

// guard converts a handler panic into an internal-error envelope.
// Handlers declare a named result and defer guard(&res).
func guard(res **mcp.CallToolResult) {
	if v := recover(); v != nil {
		*res = result(envelope.FromPanic(v))
	}
}

// stringArg extracts a string argument.
func stringArg(req mcp.CallToolRequest, name string) string {
	v, _ := req.Params.Arguments[name].(string)
	return v
}

// intArg extracts a numeric argument. JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, name string) (int, bool) {
	switch v := req.Params.Arguments[name].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// boolArg extracts a boolean argument with a default.
func boolArg(req mcp.CallToolRequest, name string, def bool) bool {
	if v, ok := req.Params.Arguments[name].(bool); ok {
		return v
	}
	return def
}

// intSliceArg extracts a list-of-IDs argument, preserving order. Both a
// JSON array of numbers and a comma-separated string are accepted.
func intSliceArg(req mcp.CallToolRequest, name string) ([]int, error) {
	switch v := req.Params.Arguments[name].(type) {
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			n, ok := item.(float64)
			if !ok {
				return nil, fmt.Errorf("expected a number, got %v", item)
			}
			out = append(out, int(n))
		}
		return out, nil
	case string:
		if v == "" {
			return nil, nil
		}
		parts := strings.Split(v, ",")
		out := make([]int, 0, len(parts))
		for _, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("expected a number, got %q", part)
			}
			out = append(out, n)
		}
		return out, nil
	}
	return nil, nil
}
