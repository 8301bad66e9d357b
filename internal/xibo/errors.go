package xibo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrorResponse reports an error caused by a non-2xx API response.
// Body preserves the raw upstream payload for diagnostics.
type ErrorResponse struct {
	Response *http.Response `json:"-"`
	Message  string         `json:"message"`
	Body     []byte         `json:"-"`
}

func (r *ErrorResponse) Error() string {
	if r.Response != nil && r.Response.Request != nil {
		return fmt.Sprintf("%v %v; %d %v",
			r.Response.Request.Method, sanitizeURL(r.Response.Request.URL),
			r.Response.StatusCode, r.Message)
	}
	return fmt.Sprintf("cms error: %v", r.Message)
}

// StatusCode returns the HTTP status of the failed response, or 0.
func (r *ErrorResponse) StatusCode() int {
	if r.Response == nil {
		return 0
	}
	return r.Response.StatusCode
}

// ValidationError reports a success response whose body did not match the
// expected schema. Raw preserves the payload that failed validation.
type ValidationError struct {
	Field    string
	Expected string
	Actual   string
	Raw      []byte
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("response validation: field %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
	}
	return fmt.Sprintf("response validation: expected %s, got %s", e.Expected, e.Actual)
}

// sanitizeURL redacts credentials embedded in a URL.
func sanitizeURL(u *url.URL) *url.URL {
	if u == nil || u.User == nil {
		return u
	}
	sanitized := *u
	sanitized.User = url.UserPassword("REDACTED", "REDACTED")
	return &sanitized
}

// CheckResponse checks the API response for errors, and returns them if
// present. A response is considered an error if it has a status code
// outside the 200 range. The error message is decoded from the body via
// decodeErrorMessage; body may be nil when the caller has not read it.
func CheckResponse(r *http.Response, body []byte) error {
	if c := r.StatusCode; 200 <= c && c <= 299 {
		return nil
	}
	return &ErrorResponse{
		Response: r,
		Message:  decodeErrorMessage(body),
		Body:     body,
	}
}

// decodeErrorMessage extracts a human-readable message from a CMS error
// body. The CMS answers with {"message": ...}, sometimes with the message
// nested under "error", sometimes percent-encoded, and sometimes with
// plain text; all of these are handled, falling back to the raw text.
func decodeErrorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		if payload.Message != "" {
			return percentDecode(payload.Message)
		}
		if len(payload.Error) > 0 {
			var nested struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(payload.Error, &nested) == nil && nested.Message != "" {
				return percentDecode(nested.Message)
			}
			var s string
			if json.Unmarshal(payload.Error, &s) == nil && s != "" {
				return percentDecode(s)
			}
		}
	}

	return string(trimmed)
}

func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}
