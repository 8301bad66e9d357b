package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/treeview"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// registerListFolders registers the list_folders tool.
func (ts *ToolServer) registerListFolders() {
	tool := mcp.NewTool("list_folders",
		mcp.WithDescription("List CMS folders. By default the flat list is rebuilt into a parent/child tree for display."),
		mcp.WithBoolean("flat",
			mcp.Description("Return the flat list instead of the tree"),
		),
	)

	ts.server.AddTool(tool, ts.handleListFolders)
}

func (ts *ToolServer) handleListFolders(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	folders, _, err := cms.Folders.List(ctx)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	if boolArg(req, "flat", false) {
		return result(envelope.OK(folders)), nil
	}

	tree := treeview.Build(folders,
		func(f *xibo.Folder) int { return f.FolderID },
		func(f *xibo.Folder) int { return f.ParentID },
	)
	return result(envelope.OK(tree)), nil
}

// registerAddFolder registers the add_folder tool.
func (ts *ToolServer) registerAddFolder() {
	tool := mcp.NewTool("add_folder",
		mcp.WithDescription("Create a new folder in the CMS."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the new folder"),
		),
		mcp.WithNumber("parent_id",
			mcp.Description("ID of the parent folder; omit for the root folder"),
		),
	)

	ts.server.AddTool(tool, ts.handleAddFolder)
}

func (ts *ToolServer) handleAddFolder(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	name := stringArg(req, "name")
	if name == "" {
		return result(envelope.InputFailure("name is required")), nil
	}

	opts := &xibo.FolderAddOptions{Text: name}
	if parentID, ok := intArg(req, "parent_id"); ok {
		opts.ParentID = parentID
	}

	folder, _, err := cms.Folders.Add(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(folder, "Folder '%s' added.", name)), nil
}

// registerDeleteFolder registers the delete_folder tool.
func (ts *ToolServer) registerDeleteFolder() {
	tool := mcp.NewTool("delete_folder",
		mcp.WithDescription("Delete a folder. The CMS refuses to delete folders that still contain content."),
		mcp.WithNumber("folder_id",
			mcp.Required(),
			mcp.Description("ID of the folder to delete"),
		),
	)

	ts.server.AddTool(tool, ts.handleDeleteFolder)
}

func (ts *ToolServer) handleDeleteFolder(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	folderID, ok := intArg(req, "folder_id")
	if !ok {
		return result(envelope.InputFailure("folder_id is required")), nil
	}

	if _, err := cms.Folders.Delete(ctx, folderID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.Deleted()), nil
}
