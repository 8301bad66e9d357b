package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"sigs.k8s.io/yaml"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// registerListDatasets registers the list_datasets tool.
func (ts *ToolServer) registerListDatasets() {
	tool := mcp.NewTool("list_datasets",
		mcp.WithDescription("List datasets in the CMS. Returns id, name, code and remote flag for each dataset."),
		mcp.WithString("name",
			mcp.Description("Filter datasets by name"),
		),
		mcp.WithNumber("folder_id",
			mcp.Description("Filter datasets by folder"),
		),
	)

	ts.server.AddTool(tool, ts.handleListDatasets)
}

func (ts *ToolServer) handleListDatasets(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	opts := &xibo.DataSetListOptions{DataSet: stringArg(req, "name")}
	if folderID, ok := intArg(req, "folder_id"); ok {
		opts.FolderID = folderID
	}

	datasets, _, err := cms.Datasets.List(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(datasets)), nil
}

// registerGetDataset registers the get_dataset tool.
func (ts *ToolServer) registerGetDataset() {
	tool := mcp.NewTool("get_dataset",
		mcp.WithDescription("Get a dataset including its columns."),
		mcp.WithNumber("dataset_id",
			mcp.Required(),
			mcp.Description("ID of the dataset to retrieve"),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format for the data payload: 'json' (default) or 'yaml'"),
		),
	)

	ts.server.AddTool(tool, ts.handleGetDataset)
}

func (ts *ToolServer) handleGetDataset(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	dataSetID, ok := intArg(req, "dataset_id")
	if !ok {
		return result(envelope.InputFailure("dataset_id is required")), nil
	}

	dataset, _, err := cms.Datasets.Get(ctx, dataSetID)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	if stringArg(req, "output_format") == "yaml" {
		out, err := yaml.Marshal(dataset)
		if err != nil {
			return result(envelope.FromError(err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}

	return result(envelope.OK(dataset)), nil
}

// registerAddDataset registers the add_dataset tool.
func (ts *ToolServer) registerAddDataset() {
	tool := mcp.NewTool("add_dataset",
		mcp.WithDescription("Create a new dataset in the CMS."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the new dataset"),
		),
		mcp.WithString("description",
			mcp.Description("Optional description"),
		),
		mcp.WithString("code",
			mcp.Description("Optional code for filtering and widget lookups"),
		),
		mcp.WithNumber("folder_id",
			mcp.Description("Folder to create the dataset in"),
		),
	)

	ts.server.AddTool(tool, ts.handleAddDataset)
}

func (ts *ToolServer) handleAddDataset(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	name := stringArg(req, "name")
	if name == "" {
		return result(envelope.InputFailure("name is required")), nil
	}

	opts := &xibo.DataSetAddOptions{
		DataSet:     name,
		Description: stringArg(req, "description"),
		Code:        stringArg(req, "code"),
	}
	if folderID, ok := intArg(req, "folder_id"); ok {
		opts.FolderID = folderID
	}

	dataset, _, err := cms.Datasets.Add(ctx, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(dataset, "DataSet '%s' added.", name)), nil
}

// registerEditDataset registers the edit_dataset tool.
func (ts *ToolServer) registerEditDataset() {
	tool := mcp.NewTool("edit_dataset",
		mcp.WithDescription("Edit an existing dataset."),
		mcp.WithNumber("dataset_id",
			mcp.Required(),
			mcp.Description("ID of the dataset to edit"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name for the dataset"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("code",
			mcp.Description("New code"),
		),
	)

	ts.server.AddTool(tool, ts.handleEditDataset)
}

func (ts *ToolServer) handleEditDataset(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	dataSetID, ok := intArg(req, "dataset_id")
	if !ok {
		return result(envelope.InputFailure("dataset_id is required")), nil
	}
	name := stringArg(req, "name")
	if name == "" {
		return result(envelope.InputFailure("name is required")), nil
	}

	dataset, _, err := cms.Datasets.Edit(ctx, dataSetID, &xibo.DataSetAddOptions{
		DataSet:     name,
		Description: stringArg(req, "description"),
		Code:        stringArg(req, "code"),
	})
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(dataset, "DataSet %d updated.", dataSetID)), nil
}

// registerDeleteDataset registers the delete_dataset tool.
func (ts *ToolServer) registerDeleteDataset() {
	tool := mcp.NewTool("delete_dataset",
		mcp.WithDescription("Delete a dataset from the CMS. IMPORTANT: This action is destructive and removes the dataset's data."),
		mcp.WithNumber("dataset_id",
			mcp.Required(),
			mcp.Description("ID of the dataset to delete"),
		),
	)

	ts.server.AddTool(tool, ts.handleDeleteDataset)
}

func (ts *ToolServer) handleDeleteDataset(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	dataSetID, ok := intArg(req, "dataset_id")
	if !ok {
		return result(envelope.InputFailure("dataset_id is required")), nil
	}

	if _, err := cms.Datasets.Delete(ctx, dataSetID); err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.Deleted()), nil
}

// registerAddDatasetColumn registers the add_dataset_column tool.
func (ts *ToolServer) registerAddDatasetColumn() {
	tool := mcp.NewTool("add_dataset_column",
		mcp.WithDescription("Add a column to a dataset."),
		mcp.WithNumber("dataset_id",
			mcp.Required(),
			mcp.Description("ID of the dataset"),
		),
		mcp.WithString("heading",
			mcp.Required(),
			mcp.Description("Column heading"),
		),
		mcp.WithNumber("data_type_id",
			mcp.Required(),
			mcp.Description("Data type: 1=String, 2=Number, 3=Date, 4=External Image, 5=Library Image"),
		),
		mcp.WithNumber("column_type_id",
			mcp.Required(),
			mcp.Description("Column type: 1=Value, 2=Formula, 3=Remote"),
		),
		mcp.WithString("list_content",
			mcp.Description("Comma-separated list of allowed values"),
		),
		mcp.WithNumber("column_order",
			mcp.Description("Display order of the column"),
		),
	)

	ts.server.AddTool(tool, ts.handleAddDatasetColumn)
}

func (ts *ToolServer) handleAddDatasetColumn(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	dataSetID, ok := intArg(req, "dataset_id")
	if !ok {
		return result(envelope.InputFailure("dataset_id is required")), nil
	}
	heading := stringArg(req, "heading")
	if heading == "" {
		return result(envelope.InputFailure("heading is required")), nil
	}
	dataTypeID, ok := intArg(req, "data_type_id")
	if !ok {
		return result(envelope.InputFailure("data_type_id is required")), nil
	}
	columnTypeID, ok := intArg(req, "column_type_id")
	if !ok {
		return result(envelope.InputFailure("column_type_id is required")), nil
	}

	opts := &xibo.DataSetColumnAddOptions{
		Heading:             heading,
		DataTypeID:          dataTypeID,
		DataSetColumnTypeID: columnTypeID,
		ListContent:         stringArg(req, "list_content"),
	}
	if order, ok := intArg(req, "column_order"); ok {
		opts.ColumnOrder = order
	}

	column, _, err := cms.Datasets.AddColumn(ctx, dataSetID, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OKMessage(column, "Column '%s' added.", heading)), nil
}

// registerGetDatasetData registers the get_dataset_data tool.
func (ts *ToolServer) registerGetDatasetData() {
	tool := mcp.NewTool("get_dataset_data",
		mcp.WithDescription("Get the row data of a dataset. Rows are keyed by column heading."),
		mcp.WithNumber("dataset_id",
			mcp.Required(),
			mcp.Description("ID of the dataset"),
		),
		mcp.WithNumber("start",
			mcp.Description("Row offset for paging"),
		),
		mcp.WithNumber("length",
			mcp.Description("Maximum number of rows to return"),
		),
	)

	ts.server.AddTool(tool, ts.handleGetDatasetData)
}

func (ts *ToolServer) handleGetDatasetData(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	dataSetID, ok := intArg(req, "dataset_id")
	if !ok {
		return result(envelope.InputFailure("dataset_id is required")), nil
	}

	opts := &xibo.ListOptions{}
	if start, ok := intArg(req, "start"); ok {
		opts.Start = start
	}
	if length, ok := intArg(req, "length"); ok {
		opts.Length = length
	}

	rows, _, err := cms.Datasets.Data(ctx, dataSetID, opts)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(rows)), nil
}

// registerEditDatasetRss registers the edit_dataset_rss tool.
func (ts *ToolServer) registerEditDatasetRss() {
	tool := mcp.NewTool("edit_dataset_rss",
		mcp.WithDescription("Manage the RSS feeds published from a dataset. Action 'add' creates a feed; 'edit' and 'delete' operate on an existing feed and require rss_id."),
		mcp.WithNumber("dataset_id",
			mcp.Required(),
			mcp.Description("ID of the dataset"),
		),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("One of: add, edit, delete"),
		),
		mcp.WithNumber("rss_id",
			mcp.Description("ID of the feed; required for edit and delete"),
		),
		mcp.WithString("title",
			mcp.Description("Feed title; required for add and edit"),
		),
		mcp.WithString("author",
			mcp.Description("Feed author"),
		),
		mcp.WithString("summary",
			mcp.Description("Column to use as the item summary"),
		),
	)

	ts.server.AddTool(tool, ts.handleEditDatasetRss)
}

func (ts *ToolServer) handleEditDatasetRss(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	cms, fail := ts.cmsClient()
	if fail != nil {
		return result(fail), nil
	}

	dataSetID, ok := intArg(req, "dataset_id")
	if !ok {
		return result(envelope.InputFailure("dataset_id is required")), nil
	}

	action := stringArg(req, "action")
	switch action {
	case "add", "edit", "delete":
	default:
		return result(envelope.InputFailure("action must be one of: add, edit, delete")), nil
	}

	// edit and delete address an existing feed; checked before any
	// network call.
	rssID, hasRssID := intArg(req, "rss_id")
	if (action == "edit" || action == "delete") && !hasRssID {
		return result(envelope.InputFailure("rss_id is required for action %q", action)), nil
	}

	opts := &xibo.DataSetRssOptions{
		Title:   stringArg(req, "title"),
		Author:  stringArg(req, "author"),
		Summary: stringArg(req, "summary"),
	}

	switch action {
	case "add":
		if opts.Title == "" {
			return result(envelope.InputFailure("title is required for action \"add\"")), nil
		}
		rss, _, err := cms.Datasets.AddRss(ctx, dataSetID, opts)
		if err != nil {
			return result(envelope.FromError(err)), nil
		}
		return result(envelope.OKMessage(rss, "RSS feed added.")), nil

	case "edit":
		rss, _, err := cms.Datasets.EditRss(ctx, dataSetID, rssID, opts)
		if err != nil {
			return result(envelope.FromError(err)), nil
		}
		return result(envelope.OKMessage(rss, "RSS feed updated.")), nil

	default: // delete
		if _, err := cms.Datasets.DeleteRss(ctx, dataSetID, rssID); err != nil {
			return result(envelope.FromError(err)), nil
		}
		return result(envelope.Deleted()), nil
	}
}
