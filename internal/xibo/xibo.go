// Package xibo provides a client for the Xibo CMS REST API.
package xibo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
	"golang.org/x/time/rate"
)

const (
	userAgent = "xibo-mcp"

	mediaTypeJSON = "application/json"
	mediaTypeForm = "application/x-www-form-urlencoded"
)

// Client manages communication with the Xibo CMS REST API.
//
// Authentication is the responsibility of the injected http.Client; the
// server wires an oauth2 client-credentials transport so every request
// carries a bearer token that is refreshed as needed.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger

	// Base URL for API requests. Must end with a trailing slash.
	BaseURL *url.URL

	// User agent used when communicating with the CMS.
	UserAgent string

	common service // Reuse a single struct instead of allocating one for each service

	// Services used for talking to different parts of the CMS API
	Datasets      *DatasetsService
	Folders       *FoldersService
	Users         *UsersService
	Notifications *NotificationsService
	Resolutions   *ResolutionsService
	Displays      *DisplaysService
	DisplayGroups *DisplayGroupsService
	Fonts         *FontsService
	Media         *MediaService
}

// service provides a general service interface for the API.
type service struct {
	client *Client
}

// DatasetsService handles communication with the dataset related
// methods of the CMS API.
type DatasetsService service

// FoldersService handles communication with the folder related
// methods of the CMS API.
type FoldersService service

// UsersService handles communication with the user related
// methods of the CMS API.
type UsersService service

// NotificationsService handles communication with the notification related
// methods of the CMS API.
type NotificationsService service

// ResolutionsService handles communication with the resolution related
// methods of the CMS API.
type ResolutionsService service

// DisplaysService handles communication with the display related
// methods of the CMS API.
type DisplaysService service

// DisplayGroupsService handles communication with the display group related
// methods of the CMS API.
type DisplayGroupsService service

// FontsService handles communication with the font related
// methods of the CMS API.
type FontsService service

// MediaService handles communication with the library media related
// methods of the CMS API.
type MediaService service

// ClientOption configures optional client behavior.
type ClientOption func(*Client)

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit caps outgoing requests at rps requests per second.
// A non-positive rps disables pacing.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient returns a new Xibo CMS API client. If a nil httpClient is
// provided, a new http.Client will be used. The address is the CMS API
// root, e.g. "https://cms.example.com/api/".
func NewClient(httpClient *http.Client, address string, opts ...ClientOption) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if !strings.HasSuffix(address, "/") {
		address += "/"
	}
	baseURL, err := url.Parse(address)
	if err != nil || baseURL.Host == "" && baseURL.Scheme == "" {
		return nil, fmt.Errorf("invalid address %q: %v", address, err)
	}

	c := &Client{
		client:    httpClient,
		BaseURL:   baseURL,
		UserAgent: userAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.common.client = c
	c.Datasets = (*DatasetsService)(&c.common)
	c.Folders = (*FoldersService)(&c.common)
	c.Users = (*UsersService)(&c.common)
	c.Notifications = (*NotificationsService)(&c.common)
	c.Resolutions = (*ResolutionsService)(&c.common)
	c.Displays = (*DisplaysService)(&c.common)
	c.DisplayGroups = (*DisplayGroupsService)(&c.common)
	c.Fonts = (*FontsService)(&c.common)
	c.Media = (*MediaService)(&c.common)

	return c, nil
}

// Response wraps the standard http.Response.
type Response struct {
	*http.Response
}

func newResponse(r *http.Response) *Response {
	return &Response{Response: r}
}

// addOptions adds the parameters in opts as URL query parameters to s.
// opts must be a struct whose fields may contain "url" tags.
func addOptions(s string, opts any) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return s, err
	}

	qs, err := query.Values(opts)
	if err != nil {
		return s, err
	}

	u.RawQuery = qs.Encode()
	return u.String(), nil
}

func (c *Client) resolveURL(urlStr string) (*url.URL, error) {
	if !strings.HasSuffix(c.BaseURL.Path, "/") {
		return nil, fmt.Errorf("BaseURL must have a trailing slash, but %q does not", c.BaseURL)
	}
	u, err := c.BaseURL.Parse(urlStr)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// NewRequest creates an API request. A relative URL can be provided in
// urlStr, in which case it is resolved relative to the BaseURL of the
// Client. If specified, the value pointed to by body is JSON encoded and
// included as the request body.
func (c *Client) NewRequest(method, urlStr string, body any) (*http.Request, error) {
	u, err := c.resolveURL(urlStr)
	if err != nil {
		return nil, err
	}

	var buf io.ReadWriter
	if body != nil {
		buf = &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		if err := enc.Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	req.Header.Set("Accept", mediaTypeJSON)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return req, nil
}

// NewFormRequest creates an API request whose body is form-urlencoded.
// opts must be a struct with "url" tags; slice fields tagged with the
// "brackets" option serialize as repeated key[]=value entries, preserving
// element order, which is the encoding the CMS expects for array fields.
func (c *Client) NewFormRequest(method, urlStr string, opts any) (*http.Request, error) {
	u, err := c.resolveURL(urlStr)
	if err != nil {
		return nil, err
	}

	form, err := query.Values(opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", mediaTypeForm)
	req.Header.Set("Accept", mediaTypeJSON)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return req, nil
}

// NewUploadRequest creates a multipart/form-data API request carrying one
// file under the "files" field plus any extra form fields.
func (c *Client) NewUploadRequest(method, urlStr, filename string, r io.Reader, fields map[string]string) (*http.Request, error) {
	u, err := c.resolveURL(urlStr)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("files", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}

	// Sorted for a deterministic body.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := w.WriteField(name, fields[name]); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, u.String(), &buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", mediaTypeJSON)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return req, nil
}

// Do sends an API request and returns the API response. The API response
// is JSON decoded and stored in the value pointed to by v, or returned as
// an error if an API error has occurred. If v implements the io.Writer
// interface, the raw response body will be written to v without decoding.
//
// A 204 No Content response, or an empty body, leaves v untouched; delete
// operations rely on this.
func (c *Client) Do(ctx context.Context, req *http.Request, v any) (*Response, error) {
	if ctx == nil {
		return nil, errors.New("context must be non-nil")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req = req.WithContext(ctx)

	resp, err := c.client.Do(req)
	if err != nil {
		// Prefer the context error so callers can detect cancellation.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return nil, err
	}
	defer resp.Body.Close()

	response := newResponse(resp)

	c.logger.Debug("cms request",
		"method", req.Method,
		"url", sanitizeURL(req.URL).String(),
		"status", resp.StatusCode,
	)

	if w, ok := v.(io.Writer); ok {
		if err := CheckResponse(resp, nil); err != nil {
			return response, err
		}
		if _, err := io.Copy(w, resp.Body); err != nil {
			return response, err
		}
		return response, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, err
	}

	if err := CheckResponse(resp, body); err != nil {
		return response, err
	}

	if v == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return response, nil
	}

	if err := decodeBody(body, v); err != nil {
		return response, err
	}
	return response, nil
}

// decodeBody unmarshals a success body into v, converting decoding
// problems into validation errors carrying field-level diagnostics and
// the raw payload. Unknown extra fields are accepted.
func decodeBody(body []byte, v any) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return &ValidationError{
			Field:    ute.Field,
			Expected: ute.Type.String(),
			Actual:   ute.Value,
			Raw:      body,
		}
	}

	return &ValidationError{
		Expected: "valid JSON",
		Actual:   err.Error(),
		Raw:      body,
	}
}
