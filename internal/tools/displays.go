package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// displayCommands maps the short command names exposed to the agent to
// the command codes the CMS understands.
var displayCommands = map[string]string{
	"reboot":      "RebootPlayer",
	"screenshot":  "ScreenShot",
	"screen_off":  "ScreenOff",
	"screen_on":   "ScreenOn",
	"collect_now": "",
}

// registerListDisplays registers the list_displays tool.
func (ts *ToolServer) registerListDisplays() {
	tool := mcp.NewTool("list_displays",
		mcp.WithDescription("List registered displays, optionally filtered by name or authorisation state."),
		mcp.WithString("display",
			mcp.Description("Filter by display name"),
		),
		mcp.WithNumber("authorised",
			mcp.Description("Filter by authorisation state: 1 for authorised, 0 for pending"),
		),
	)

	ts.server.AddTool(tool, ts.handleListDisplays)
}

func (ts *ToolServer) handleListDisplays(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	opts := &xibo.DisplayListOptions{}
	if name := stringArg(req, "display"); name != "" {
		opts.Display = name
	}
	if authorised, ok := intArg(req, "authorised"); ok {
		opts.Authorised = authorised
	}

	displays, _, err := cms.Displays.List(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(displays)), nil
}

// registerAuthorizeDisplay registers the authorize_display tool.
func (ts *ToolServer) registerAuthorizeDisplay() {
	tool := mcp.NewTool("authorize_display",
		mcp.WithDescription("Toggle the authorised flag of a display. Authorising a pending display lets it download content."),
		mcp.WithNumber("display_id",
			mcp.Required(),
			mcp.Description("ID of the display"),
		),
	)

	ts.server.AddTool(tool, ts.handleAuthorizeDisplay)
}

func (ts *ToolServer) handleAuthorizeDisplay(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	displayID, ok := intArg(req, "display_id")
	if !ok {
		return result(envelope.InputFailure("display_id is required")), nil
	}

	if _, err := cms.Displays.Authorize(ctx, displayID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(nil, "Display %d authorisation toggled.", displayID)), nil
}

// registerWakeDisplay registers the wake_display tool.
func (ts *ToolServer) registerWakeDisplay() {
	tool := mcp.NewTool("wake_display",
		mcp.WithDescription("Send a wake-on-LAN packet to a display through the CMS."),
		mcp.WithNumber("display_id",
			mcp.Required(),
			mcp.Description("ID of the display to wake"),
		),
	)

	ts.server.AddTool(tool, ts.handleWakeDisplay)
}

func (ts *ToolServer) handleWakeDisplay(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	displayID, ok := intArg(req, "display_id")
	if !ok {
		return result(envelope.InputFailure("display_id is required")), nil
	}

	if _, err := cms.Displays.WakeOnLan(ctx, displayID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(nil, "Wake-on-LAN sent to display %d.", displayID)), nil
}

// registerSendDisplayCommand registers the send_display_command tool.
func (ts *ToolServer) registerSendDisplayCommand() {
	tool := mcp.NewTool("send_display_command",
		mcp.WithDescription("Run a predefined command on every display in a display group. Commands: reboot, screenshot, screen_off, screen_on, collect_now."),
		mcp.WithNumber("display_group_id",
			mcp.Required(),
			mcp.Description("ID of the target display group"),
		),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("One of: reboot, screenshot, screen_off, screen_on, collect_now"),
		),
	)

	ts.server.AddTool(tool, ts.handleSendDisplayCommand)
}

func (ts *ToolServer) handleSendDisplayCommand(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	groupID, ok := intArg(req, "display_group_id")
	if !ok {
		return result(envelope.InputFailure("display_group_id is required")), nil
	}

	command := stringArg(req, "command")
	code, ok := displayCommands[command]
	if !ok {
		return result(envelope.InputFailure("unknown command %q", command)), nil
	}

	var err error
	if command == "collect_now" {
		_, err = cms.DisplayGroups.CollectNow(ctx, groupID)
	} else {
		_, err = cms.DisplayGroups.Command(ctx, groupID, code)
	}
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(nil, "Command '%s' sent to display group %d.", command, groupID)), nil
}
