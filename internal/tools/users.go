package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// registerListUsers registers the list_users tool.
func (ts *ToolServer) registerListUsers() {
	tool := mcp.NewTool("list_users",
		mcp.WithDescription("List CMS users, optionally filtered by name."),
		mcp.WithString("user_name",
			mcp.Description("Filter by user name"),
		),
	)

	ts.server.AddTool(tool, ts.handleListUsers)
}

func (ts *ToolServer) handleListUsers(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	opts := &xibo.UserListOptions{}
	if name := stringArg(req, "user_name"); name != "" {
		opts.UserName = name
	}

	users, _, err := cms.Users.List(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(users)), nil
}

// registerGetUser registers the get_user tool.
func (ts *ToolServer) registerGetUser() {
	tool := mcp.NewTool("get_user",
		mcp.WithDescription("Get a single CMS user by ID, or the authenticated user when no ID is given."),
		mcp.WithNumber("user_id",
			mcp.Description("ID of the user; omit for the current user"),
		),
	)

	ts.server.AddTool(tool, ts.handleGetUser)
}

func (ts *ToolServer) handleGetUser(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	userID, ok := intArg(req, "user_id")
	if !ok {
		user, _, err := cms.Users.Me(ctx)
		if err != nil {
			return result(envelope.FromError(err)), nil
		}
		return result(envelope.OK(user)), nil
	}

	user, _, err := cms.Users.Get(ctx, userID)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(user)), nil
}
