package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// registerListNotifications registers the list_notifications tool.
func (ts *ToolServer) registerListNotifications() {
	tool := mcp.NewTool("list_notifications",
		mcp.WithDescription("List notifications stored in the CMS."),
	)

	ts.server.AddTool(tool, ts.handleListNotifications)
}

func (ts *ToolServer) handleListNotifications(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	notifications, _, err := cms.Notifications.List(ctx, nil)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(notifications)), nil
}

// registerAddNotification registers the add_notification tool.
func (ts *ToolServer) registerAddNotification() {
	tool := mcp.NewTool("add_notification",
		mcp.WithDescription("Create a notification and target it at one or more display groups."),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Subject line of the notification"),
		),
		mcp.WithString("body",
			mcp.Description("Body text of the notification"),
		),
		mcp.WithString("display_group_ids",
			mcp.Required(),
			mcp.Description("Comma-separated display group IDs to notify, e.g. \"7,3,9\""),
		),
		mcp.WithBoolean("is_interrupt",
			mcp.Description("Interrupt playback to show the notification"),
		),
	)

	ts.server.AddTool(tool, ts.handleAddNotification)
}

func (ts *ToolServer) handleAddNotification(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	subject := stringArg(req, "subject")
	if subject == "" {
		return result(envelope.InputFailure("subject is required")), nil
	}

	groupIDs, err := intSliceArg(req, "display_group_ids")
	if err != nil {
		return result(envelope.InputFailure("display_group_ids: %v", err)), nil
	}
	if len(groupIDs) == 0 {
		return result(envelope.InputFailure("display_group_ids is required")), nil
	}

	opts := &xibo.NotificationAddOptions{
		Subject:         subject,
		Body:            stringArg(req, "body"),
		DisplayGroupIDs: groupIDs,
	}
	if boolArg(req, "is_interrupt", false) {
		opts.IsInterrupt = 1
	}

	notification, _, err := cms.Notifications.Add(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(notification, "Notification '%s' added.", subject)), nil
}

// registerDeleteNotification registers the delete_notification tool.
func (ts *ToolServer) registerDeleteNotification() {
	tool := mcp.NewTool("delete_notification",
		mcp.WithDescription("Delete a notification from the CMS."),
		mcp.WithNumber("notification_id",
			mcp.Required(),
			mcp.Description("ID of the notification to delete"),
		),
	)

	ts.server.AddTool(tool, ts.handleDeleteNotification)
}

func (ts *ToolServer) handleDeleteNotification(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	notificationID, ok := intArg(req, "notification_id")
	if !ok {
		return result(envelope.InputFailure("notification_id is required")), nil
	}

	if _, err := cms.Notifications.Delete(ctx, notificationID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.Deleted()), nil
}
