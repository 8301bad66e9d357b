package envelope

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xibo-tools/xibo-mcp/internal/xibo"
)

func TestOK(t *testing.T) {
	env := OK(map[string]int{"resolutionId": 5})

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.JSON()), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.NotContains(t, decoded, "errorData")
}

func TestDeleted_NoData(t *testing.T) {
	env := Deleted()

	assert.True(t, env.Success)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.JSON()), &decoded))
	assert.NotContains(t, decoded, "data")
}

func TestConfigFailure(t *testing.T) {
	env := ConfigFailure()

	assert.False(t, env.Success)
	assert.Equal(t, "CMS URL is not configured.", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, KindConfig, env.Error.Kind)
}

func TestInputFailure(t *testing.T) {
	env := InputFailure("rss_id is required for action %q", "delete")

	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "required")
	assert.Equal(t, KindInput, env.Error.Kind)
}

func TestFromError_HTTP(t *testing.T) {
	body := []byte(`{"message":"DataSet not found"}`)
	err := &xibo.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusNotFound},
		Message:  "DataSet not found",
		Body:     body,
	}

	env := FromError(err)

	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "DataSet not found")
	require.NotNil(t, env.Error)
	assert.Equal(t, KindHTTP, env.Error.Kind)
	assert.Equal(t, http.StatusNotFound, env.Error.Status)
	assert.JSONEq(t, string(body), string(env.ErrorData))
}

func TestFromError_HTTPNonJSONBody(t *testing.T) {
	err := &xibo.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusBadGateway},
		Message:  "upstream proxy error",
		Body:     []byte("upstream proxy error"),
	}

	env := FromError(err)

	// Non-JSON upstream bodies are preserved as a JSON string.
	assert.True(t, json.Valid(env.ErrorData))
	assert.False(t, env.Success)
}

func TestFromError_Validation(t *testing.T) {
	err := &xibo.ValidationError{
		Field:    "resolutionId",
		Expected: "int",
		Actual:   "string",
		Raw:      []byte(`{"resolutionId":"five"}`),
	}

	env := FromError(err)

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, KindValidation, env.Error.Kind)
	require.Len(t, env.Error.Fields, 1)
	assert.Equal(t, "resolutionId", env.Error.Fields[0].Field)
	assert.NotEmpty(t, env.Error.Message)
	assert.NotEmpty(t, env.ErrorData)
}

func TestFromError_Transport(t *testing.T) {
	env := FromError(errors.New("dial tcp: connection refused"))

	assert.False(t, env.Success)
	assert.Equal(t, KindTransport, env.Error.Kind)
	assert.Equal(t, "TransportError", env.Error.Name)
}

func TestFromPanic(t *testing.T) {
	t.Run("error value", func(t *testing.T) {
		env := FromPanic(errors.New("boom"))
		assert.False(t, env.Success)
		assert.Equal(t, KindInternal, env.Error.Kind)
		assert.Equal(t, "boom", env.Error.Message)
	})

	t.Run("non-error value", func(t *testing.T) {
		env := FromPanic("string panic")
		assert.False(t, env.Success)
		assert.Equal(t, "string", env.Error.Name)
		assert.Equal(t, "string panic", env.Error.Message)
	})
}

func TestJSON_RoundTrips(t *testing.T) {
	env := FromError(&xibo.ValidationError{Field: "width", Expected: "int", Actual: "bool", Raw: []byte(`{}`)})

	var decoded Result
	require.NoError(t, json.Unmarshal([]byte(env.JSON()), &decoded))
	assert.False(t, decoded.Success)
	assert.Equal(t, KindValidation, decoded.Error.Kind)
}
