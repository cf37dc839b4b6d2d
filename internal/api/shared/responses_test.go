package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"status": "Scheduled"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Scheduled", body["status"])
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	ctx := SetTraceID(req.Context())
	traceID := GetTraceID(ctx)
	req = req.WithContext(ctx)
	require.NotEmpty(t, traceID)

	RespondWithError(rr, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Task not found", resp.Error)
	assert.Equal(t, traceID, resp.TraceID)
	// The internal status code is for logging only.
	assert.NotContains(t, rr.Body.String(), `"Code"`)
}

func TestRespondWithErrorAndLog_SendsOnlySafeMessage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	internal := errors.New("dial postgres://admin:hunter2@db:5432/tasks: refused")
	RespondWithErrorAndLog(rr, req, http.StatusInternalServerError, "Failed to list tasks", internal)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to list tasks")
	assert.NotContains(t, rr.Body.String(), "hunter2")
	assert.NotContains(t, rr.Body.String(), "postgres://")
}

func TestSetTraceID_GeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	ctx1 := SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	first := GetTraceID(ctx1)
	second := GetTraceID(SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, GetTraceID(ctx1))
}

func TestGetTraceID_EmptyWithoutTrace(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetTraceID(req.Context()))
}
