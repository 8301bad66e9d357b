package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xibo-tools/xibo-mcp/internal/config"
	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/weather"
	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// setup starts a counting test CMS and returns a ToolServer wired to it.
// The counter records every request that reaches the server, so tests
// can assert that precondition failures never go on the wire.
func setup(t *testing.T) (*ToolServer, *http.ServeMux, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	mux := http.NewServeMux()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	cms, err := xibo.NewClient(nil, server.URL+"/api/")
	require.NoError(t, err)

	return &ToolServer{
		cfg: &config.Config{CMSURL: server.URL},
		cms: cms,
	}, mux, &calls
}

// callReq builds a tool call request with the given arguments.
func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// decodeResult extracts the envelope from a tool result.
func decodeResult(t *testing.T, res *mcp.CallToolResult) *envelope.Result {
	t.Helper()

	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is not text: %T", res.Content[0])

	var env envelope.Result
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &env))
	return &env
}

func TestConfigFailure(t *testing.T) {
	// A server without a CMS URL carries a nil client; every CMS tool
	// must fail the same way, before any request is built.
	ts := &ToolServer{cfg: &config.Config{}}

	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"list_datasets":    ts.handleListDatasets,
		"list_folders":     ts.handleListFolders,
		"list_displays":    ts.handleListDisplays,
		"delete_media":     ts.handleDeleteMedia,
		"add_notification": ts.handleAddNotification,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			res, err := handler(context.Background(), callReq(nil))
			require.NoError(t, err)

			env := decodeResult(t, res)
			assert.True(t, res.IsError)
			assert.False(t, env.Success)
			assert.Equal(t, "CMS URL is not configured.", env.Message)
			require.NotNil(t, env.Error)
			assert.Equal(t, envelope.KindConfig, env.Error.Kind)
		})
	}
}

func TestAddResolution(t *testing.T) {
	ts, mux, _ := setup(t)

	mux.HandleFunc("/api/resolution", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "720p", r.PostForm.Get("resolution"))
		assert.Equal(t, "1280", r.PostForm.Get("width"))
		assert.Equal(t, "720", r.PostForm.Get("height"))
		fmt.Fprint(w, `{"resolutionId":5,"resolution":"720p","width":1280,"height":720}`)
	})

	res, err := ts.handleAddResolution(context.Background(), callReq(map[string]any{
		"resolution": "720p",
		"width":      float64(1280),
		"height":     float64(720),
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	require.True(t, env.Success)
	assert.Equal(t, "Resolution '720p' added.", env.Message)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5), data["resolutionId"])
}

func TestEditDatasetRss_MissingRssID(t *testing.T) {
	ts, _, calls := setup(t)

	res, err := ts.handleEditDatasetRss(context.Background(), callReq(map[string]any{
		"dataset_id": float64(4),
		"action":     "edit",
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.True(t, res.IsError)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "required")
	require.NotNil(t, env.Error)
	assert.Equal(t, envelope.KindInput, env.Error.Kind)
	assert.Equal(t, int64(0), calls.Load(), "precondition failure must not reach the wire")
}

func TestDeleteDataset_NoContent(t *testing.T) {
	ts, mux, _ := setup(t)

	mux.HandleFunc("/api/dataset/4", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := ts.handleDeleteDataset(context.Background(), callReq(map[string]any{
		"dataset_id": float64(4),
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.True(t, env.Success)
	assert.Equal(t, "Deleted.", env.Message)
	assert.Nil(t, env.Data)
}

func TestListDatasets_SchemaViolation(t *testing.T) {
	ts, mux, _ := setup(t)

	mux.HandleFunc("/api/dataset", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"dataSetId":"not-a-number","dataSet":"Menu"}]`)
	})

	res, err := ts.handleListDatasets(context.Background(), callReq(nil))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.True(t, res.IsError)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, envelope.KindValidation, env.Error.Kind)
	require.Len(t, env.Error.Fields, 1)
	assert.Equal(t, "dataSetId", env.Error.Fields[0].Field)
	assert.NotEmpty(t, env.ErrorData, "raw payload must survive validation failure")
}

func TestListDatasets_HTTPError(t *testing.T) {
	ts, mux, _ := setup(t)

	mux.HandleFunc("/api/dataset", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"DataSet not found"}`)
	})

	res, err := ts.handleListDatasets(context.Background(), callReq(nil))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.False(t, env.Success)
	assert.Equal(t, "DataSet not found", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, envelope.KindHTTP, env.Error.Kind)
	assert.Equal(t, http.StatusNotFound, env.Error.Status)
	assert.JSONEq(t, `{"message":"DataSet not found"}`, string(env.ErrorData))
}

func TestListDatasets_Idempotent(t *testing.T) {
	ts, mux, _ := setup(t)

	mux.HandleFunc("/api/dataset", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"dataSetId":4,"dataSet":"Menu"},{"dataSetId":7,"dataSet":"Prices"}]`)
	})

	req := callReq(nil)
	first, err := ts.handleListDatasets(context.Background(), req)
	require.NoError(t, err)
	second, err := ts.handleListDatasets(context.Background(), req)
	require.NoError(t, err)

	firstText := first.Content[0].(mcp.TextContent).Text
	secondText := second.Content[0].(mcp.TextContent).Text
	assert.Equal(t, firstText, secondText, "repeated reads must render identical envelopes")
}

func TestListFolders_Tree(t *testing.T) {
	ts, mux, _ := setup(t)

	mux.HandleFunc("/api/folders", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"folderId":1,"text":"Root","parentId":1,"isRoot":1},
			{"folderId":2,"text":"Menus","parentId":1},
			{"folderId":3,"text":"Breakfast","parentId":2}
		]`)
	})

	res, err := ts.handleListFolders(context.Background(), callReq(nil))
	require.NoError(t, err)

	env := decodeResult(t, res)
	require.True(t, env.Success)

	roots, ok := env.Data.([]any)
	require.True(t, ok)
	require.Len(t, roots, 1, "self-parented folder is the single root")

	root := roots[0].(map[string]any)
	children := root["children"].([]any)
	require.Len(t, children, 1)

	menus := children[0].(map[string]any)
	item := menus["item"].(map[string]any)
	assert.Equal(t, "Menus", item["text"])
	assert.Len(t, menus["children"], 1)
}

func TestAddNotification_GroupIDOrder(t *testing.T) {
	ts, mux, _ := setup(t)

	mux.HandleFunc("/api/notification", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, []string{"7", "3", "9"}, r.PostForm["displayGroupIds[]"])
		fmt.Fprint(w, `{"notificationId":12,"subject":"Maintenance"}`)
	})

	res, err := ts.handleAddNotification(context.Background(), callReq(map[string]any{
		"subject":           "Maintenance",
		"display_group_ids": "7, 3, 9",
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.True(t, env.Success)
}

func TestSendDisplayCommand_UnknownCommand(t *testing.T) {
	ts, _, calls := setup(t)

	res, err := ts.handleSendDisplayCommand(context.Background(), callReq(map[string]any{
		"display_group_id": float64(3),
		"command":          "self_destruct",
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "self_destruct")
	assert.Equal(t, int64(0), calls.Load())
}

func TestGetWeatherByName_NoResults(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"results":[]}`)
	}))
	t.Cleanup(server.Close)

	wc := weather.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	wc.GeocodeURL = base
	wc.ForecastURL = base

	ts := &ToolServer{cfg: &config.Config{}, weather: wc}

	res, err := ts.handleGetWeatherByName(context.Background(), callReq(map[string]any{
		"name": "Nowhereville",
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, envelope.KindInput, env.Error.Kind)
	assert.Contains(t, env.Message, "Nowhereville")
	assert.Equal(t, int64(1), calls.Load(), "a geocode miss must not trigger a forecast call")
}

func TestUploadMedia_PathEscapeRejected(t *testing.T) {
	ts, _, calls := setup(t)
	ts.cfg.UploadDir = t.TempDir()

	res, err := ts.handleUploadMedia(context.Background(), callReq(map[string]any{
		"file_name": "../secrets.txt",
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, envelope.KindInput, env.Error.Kind)
	assert.Equal(t, int64(0), calls.Load())
}

func TestUploadMedia_DefaultName(t *testing.T) {
	ts, mux, _ := setup(t)
	ts.cfg.UploadDir = t.TempDir()

	path := filepath.Join(ts.cfg.UploadDir, "menu.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	var gotName string
	mux.HandleFunc("/api/library", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.MultipartForm.Value["name"][0]
		fmt.Fprint(w, `{"files":[{"name":"menu.png","size":9,"mediaId":31}]}`)
	})

	res, err := ts.handleUploadMedia(context.Background(), callReq(map[string]any{
		"file_name": "menu.png",
	}))
	require.NoError(t, err)

	env := decodeResult(t, res)
	require.True(t, env.Success)
	assert.NotEmpty(t, gotName, "omitted media name must be generated")
}

func TestGuard_PanicBecomesInternalError(t *testing.T) {
	var res *mcp.CallToolResult
	func() {
		defer guard(&res)
		panic("boom")
	}()

	env := decodeResult(t, res)
	assert.False(t, env.Success)
	assert.Equal(t, "Internal error.", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, envelope.KindInternal, env.Error.Kind)
	assert.Equal(t, "boom", env.Error.Message)
}
