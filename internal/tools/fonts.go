package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
)

// registerListFonts registers the list_fonts tool.
func (ts *ToolServer) registerListFonts() {
	tool := mcp.NewTool("list_fonts",
		mcp.WithDescription("List the fonts stored in the CMS."),
	)

	ts.server.AddTool(tool, ts.handleListFonts)
}

func (ts *ToolServer) handleListFonts(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	fonts, _, err := cms.Fonts.List(ctx)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(fonts)), nil
}

// registerUploadFont registers the upload_font tool.
func (ts *ToolServer) registerUploadFont() {
	tool := mcp.NewTool("upload_font",
		mcp.WithDescription("Upload a font file from the configured upload directory to the CMS."),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Name of the font file inside the upload directory"),
		),
	)

	ts.server.AddTool(tool, ts.handleUploadFont)
}

func (ts *ToolServer) handleUploadFont(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
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

	f, err := os.Open(path)
	if err != nil {
		return result(envelope.InputFailure("open %s: %v", fileName, err)), nil
	}
	defer f.Close()

	uploaded, _, err := cms.Fonts.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(uploaded, "Font '%s' uploaded.", fileName)), nil
}

// registerDownloadFont registers the download_font tool.
func (ts *ToolServer) registerDownloadFont() {
	tool := mcp.NewTool("download_font",
		mcp.WithDescription("Download a font file from the CMS into the configured download directory."),
		mcp.WithNumber("font_id",
			mcp.Required(),
			mcp.Description("ID of the font to download"),
		),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("File name to write inside the download directory"),
		),
	)

	ts.server.AddTool(tool, ts.handleDownloadFont)
}

func (ts *ToolServer) handleDownloadFont(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	fontID, ok := intArg(req, "font_id")
	if !ok {
		return result(envelope.InputFailure("font_id is required")), nil
	}
	fileName := stringArg(req, "file_name")
	if fileName == "" {
		return result(envelope.InputFailure("file_name is required")), nil
	}

	path, err := insideDir(ts.cfg.DownloadDir, fileName)
	if err != nil {
		return result(envelope.InputFailure("%v", err)), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return result(envelope.FromError(err)), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}
	defer f.Close()

	if _, err := cms.Fonts.Download(ctx, fontID, f); err != nil {
		os.Remove(path)
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(map[string]string{"path": path}, "Font %d saved to %s.", fontID, fileName)), nil
}

// registerDeleteFont registers the delete_font tool.
func (ts *ToolServer) registerDeleteFont() {
	tool := mcp.NewTool("delete_font",
		mcp.WithDescription("Delete a font from the CMS."),
		mcp.WithNumber("font_id",
			mcp.Required(),
			mcp.Description("ID of the font to delete"),
		),
	)

	ts.server.AddTool(tool, ts.handleDeleteFont)
}

func (ts *ToolServer) handleDeleteFont(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	fontID, ok := intArg(req, "font_id")
	if !ok {
		return result(envelope.InputFailure("font_id is required")), nil
	}

	if _, err := cms.Fonts.Delete(ctx, fontID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.Deleted()), nil
}

// uploadPath resolves name inside the configured upload directory.
func (ts *ToolServer) uploadPath(name string) (string, error) {
	return insideDir(ts.cfg.UploadDir, name)
}

// insideDir joins name onto dir and rejects paths that escape it.
func insideDir(dir, name string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("no directory configured")
	}
	path := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return "", fmt.Errorf("%q resolves outside %s", name, dir)
	}
	return path, nil
}
