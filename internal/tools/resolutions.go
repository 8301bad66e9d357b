package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// registerListResolutions registers the list_resolutions tool.
func (ts *ToolServer) registerListResolutions() {
	tool := mcp.NewTool("list_resolutions",
		mcp.WithDescription("List the display resolutions defined in the CMS."),
		mcp.WithNumber("enabled",
			mcp.Description("Filter by enabled state: 1 for enabled, 0 for disabled"),
		),
	)

	ts.server.AddTool(tool, ts.handleListResolutions)
}

func (ts *ToolServer) handleListResolutions(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	opts := &xibo.ResolutionListOptions{}
	if enabled, ok := intArg(req, "enabled"); ok {
		opts.Enabled = xibo.Int(enabled)
	}

	resolutions, _, err := cms.Resolutions.List(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(resolutions)), nil
}

// registerAddResolution registers the add_resolution tool.
func (ts *ToolServer) registerAddResolution() {
	tool := mcp.NewTool("add_resolution",
		mcp.WithDescription("Add a new display resolution to the CMS."),
		mcp.WithString("resolution",
			mcp.Required(),
			mcp.Description("Name for the resolution, e.g. '720p'"),
		),
		mcp.WithNumber("width",
			mcp.Required(),
			mcp.Description("Width in pixels"),
		),
		mcp.WithNumber("height",
			mcp.Required(),
			mcp.Description("Height in pixels"),
		),
	)

	ts.server.AddTool(tool, ts.handleAddResolution)
}

func (ts *ToolServer) handleAddResolution(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	name := stringArg(req, "resolution")
	if name == "" {
		return result(envelope.InputFailure("resolution is required")), nil
	}
	width, ok := intArg(req, "width")
	if !ok {
		return result(envelope.InputFailure("width is required")), nil
	}
	height, ok := intArg(req, "height")
	if !ok {
		return result(envelope.InputFailure("height is required")), nil
	}

	resolution, _, err := cms.Resolutions.Add(ctx, &xibo.ResolutionAddOptions{
		Resolution: name,
		Width:      width,
		Height:     height,
	})
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(resolution, "Resolution '%s' added.", name)), nil
}

// registerDeleteResolution registers the delete_resolution tool.
func (ts *ToolServer) registerDeleteResolution() {
	tool := mcp.NewTool("delete_resolution",
		mcp.WithDescription("Delete a display resolution from the CMS."),
		mcp.WithNumber("resolution_id",
			mcp.Required(),
			mcp.Description("ID of the resolution to delete"),
		),
	)

	ts.server.AddTool(tool, ts.handleDeleteResolution)
}

func (ts *ToolServer) handleDeleteResolution(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	resolutionID, ok := intArg(req, "resolution_id")
	if !ok {
		return result(envelope.InputFailure("resolution_id is required")), nil
	}

	if _, err := cms.Resolutions.Delete(ctx, resolutionID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.Deleted()), nil
}
