package tools

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// registerListMedia registers the list_media tool.
func (ts *ToolServer) registerListMedia() {
	tool := mcp.NewTool("list_media",
		mcp.WithDescription("List media items in the CMS library."),
		mcp.WithNumber("start",
			mcp.Description("Row offset for paging"),
		),
		mcp.WithNumber("length",
			mcp.Description("Maximum number of items to return"),
		),
	)

	ts.server.AddTool(tool, ts.handleListMedia)
}

func (ts *ToolServer) handleListMedia(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	opts := &xibo.ListOptions{}
	if start, ok := intArg(req, "start"); ok {
		opts.Start = start
	}
	if length, ok := intArg(req, "length"); ok {
		opts.Length = length
	}

	media, _, err := cms.Media.List(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(media)), nil
}

// registerUploadMedia registers the upload_media tool.
func (ts *ToolServer) registerUploadMedia() {
	tool := mcp.NewTool("upload_media",
		mcp.WithDescription("Upload a file from the configured upload directory into the CMS library."),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Name of the file inside the upload directory"),
		),
		mcp.WithString("name",
			mcp.Description("Media name in the CMS; a random name is generated when omitted"),
		),
	)

	ts.server.AddTool(tool, ts.handleUploadMedia)
}

func (ts *ToolServer) handleUploadMedia(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	fileName := stringArg(req, "file_name")
	if fileName == "" {
		return result(envelope.InputFailure("file_name is required")), nil
	}

	path, err := ts.uploadPath(fileName)
	if err != nil {
		return result(envelope.InputFailure("%v", err)), nil
	}

	name := stringArg(req, "name")
	if name == "" {
		name = uuid.NewString()
	}

	f, err := os.Open(path)
	if err != nil {
		return result(envelope.InputFailure("open %s: %v", fileName, err)), nil
	}
	defer f.Close()

	uploaded, _, err := cms.Media.Upload(ctx, name, filepath.Base(path), f)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(uploaded, "Media '%s' uploaded as '%s'.", fileName, name)), nil
}

// registerDeleteMedia registers the delete_media tool.
func (ts *ToolServer) registerDeleteMedia() {
	tool := mcp.NewTool("delete_media",
		mcp.WithDescription("Delete a media item from the CMS library."),
		mcp.WithNumber("media_id",
			mcp.Required(),
			mcp.Description("ID of the media item to delete"),
		),
	)

	ts.server.AddTool(tool, ts.handleDeleteMedia)
}

func (ts *ToolServer) handleDeleteMedia(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	mediaID, ok := intArg(req, "media_id")
	if !ok {
		return result(envelope.InputFailure("media_id is required")), nil
	}

	if _, err := cms.Media.Delete(ctx, mediaID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.Deleted()), nil
}
