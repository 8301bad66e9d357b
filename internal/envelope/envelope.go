// Package envelope defines the uniform success/failure shape every tool
// returns, and the normalization of errors into it.
package envelope

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

// ErrorKind tags the failure cause so callers can pattern-match instead
// of inspecting untyped values.
type ErrorKind string

const (
	KindConfig     ErrorKind = "config"
	KindInput      ErrorKind = "input"
	KindTransport  ErrorKind = "transport"
	KindHTTP       ErrorKind = "http"
	KindValidation ErrorKind = "validation"
	KindInternal   ErrorKind = "internal"
)

// FieldIssue describes one field that failed response validation.
type FieldIssue struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Detail is the structured error payload of a failure envelope.
type Detail struct {
	Kind    ErrorKind    `json:"kind"`
	Name    string       `json:"name"`
	Message string       `json:"message"`
	Status  int          `json:"status,omitempty"`
	Fields  []FieldIssue `json:"fields,omitempty"`
}

// Result is the envelope every tool call terminates in: either
// {success:true, data} or {success:false, message, error, errorData}.
type Result struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      any             `json:"data,omitempty"`
	Error     *Detail         `json:"error,omitempty"`
	ErrorData json.RawMessage `json:"errorData,omitempty"`
}

// OK returns a success envelope carrying data.
func OK(data any) *Result {
	return &Result{Success: true, Data: data}
}

// OKMessage returns a success envelope with data and a human-readable
// message.
func OKMessage(data any, format string, args ...any) *Result {
	return &Result{Success: true, Data: data, Message: fmt.Sprintf(format, args...)}
}

// Deleted returns the success envelope for delete operations, which carry
// no data payload.
func Deleted() *Result {
	return &Result{Success: true, Message: "Deleted."}
}

// ConfigFailure reports a missing CMS URL. Detected before any network
// call is attempted.
func ConfigFailure() *Result {
	const msg = "CMS URL is not configured."
	return &Result{
		Success: false,
		Message: msg,
		Error:   &Detail{Kind: KindConfig, Name: "ConfigError", Message: msg},
	}
}

// InputFailure reports an input precondition violation, detected before
// any network call.
func InputFailure(format string, args ...any) *Result {
	msg := fmt.Sprintf(format, args...)
	return &Result{
		Success: false,
		Message: msg,
		Error:   &Detail{Kind: KindInput, Name: "InputError", Message: msg},
	}
}

// FromError normalizes an error returned by the CMS client into a
// failure envelope. HTTP errors keep the raw upstream payload in
// errorData; validation errors carry field diagnostics plus the payload
// that failed validation.
func FromError(err error) *Result {
	var er *xibo.ErrorResponse
	if errors.As(err, &er) {
		msg := er.Message
		if msg == "" {
			msg = http.StatusText(er.StatusCode())
		}
		return &Result{
			Success: false,
			Message: msg,
			Error: &Detail{
				Kind:    KindHTTP,
				Name:    "HTTPError",
				Message: msg,
				Status:  er.StatusCode(),
			},
			ErrorData: rawJSON(er.Body),
		}
	}

	var ve *xibo.ValidationError
	if errors.As(err, &ve) {
		return &Result{
			Success: false,
			Message: "Response did not match the expected schema.",
			Error: &Detail{
				Kind:    KindValidation,
				Name:    "ValidationError",
				Message: ve.Error(),
				Fields: []FieldIssue{
					{Field: ve.Field, Expected: ve.Expected, Actual: ve.Actual},
				},
			},
			ErrorData: rawJSON(ve.Raw),
		}
	}

	kind := KindTransport
	name := "TransportError"
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		name = "ContextError"
	}
	return &Result{
		Success: false,
		Message: err.Error(),
		Error:   &Detail{Kind: kind, Name: name, Message: err.Error()},
	}
}

// FromPanic normalizes a recovered panic value. Non-error values are
// still reduced to a serializable {name, message} shape.
func FromPanic(v any) *Result {
	name := fmt.Sprintf("%T", v)
	msg := fmt.Sprintf("%v", v)
	if err, ok := v.(error); ok {
		msg = err.Error()
	}
	return &Result{
		Success: false,
		Message: "Internal error.",
		Error:   &Detail{Kind: KindInternal, Name: name, Message: msg},
	}
}

// JSON renders the envelope as indented JSON. Marshaling an envelope can
// only fail on non-serializable data, which is reported as a minimal
// failure envelope rather than propagated.
func (r *Result) JSON() string {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"message":%q}`, "failed to encode result: "+err.Error())
	}
	return string(out)
}

// rawJSON wraps a body as a JSON raw message, quoting non-JSON bodies so
// the envelope stays serializable.
func rawJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return json.RawMessage(quoted)
}
