package route

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helper "hellointerview_backend/internals/helpers"
	"hellointerview_backend/internals/testhelpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	PracticeMainRoutes(app.Group("/api/v1"), db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if resp.Body != nil {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func TestPracticeMainLifecycleOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	// Create: user 456 starts question main 1.
	resp, created := doJSON(t, app, http.MethodPost, "/api/v1/practice-main",
		map[string]interface{}{"user_id": 456, "question_main_id": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "practicing", created["status"])
	assert.Nil(t, created["completed_at"])
	require.NotNil(t, created["practice_main_id"])
	id := int64(created["practice_main_id"].(float64))

	// The active lookup finds it, with empty progress.
	resp, active := doJSON(t, app, http.MethodGet,
		"/api/v1/practice-main?user_id=456&question_main_id=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "practicing", active["status"])
	ids, ok := active["question_ids_with_practices"].([]interface{})
	require.True(t, ok, "progress must serialize as an array")
	assert.Empty(t, ids)

	// Complete.
	resp, completed := doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/practice-main/%d", id),
		map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", completed["status"])
	require.NotNil(t, completed["completed_at"])

	startedAt, err := time.Parse(time.RFC3339Nano, completed["started_at"].(string))
	require.NoError(t, err)
	completedAt, err := time.Parse(time.RFC3339Nano, completed["completed_at"].(string))
	require.NoError(t, err)
	assert.False(t, completedAt.Before(startedAt))

	// Re-complete: idempotent, same completed_at, no error.
	resp, replay := doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/practice-main/%d", id),
		map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	replayAt, err := time.Parse(time.RFC3339Nano, replay["completed_at"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, completedAt, replayAt, time.Millisecond)

	// The live lookup no longer sees it.
	resp, body := doJSON(t, app, http.MethodGet,
		"/api/v1/practice-main?user_id=456&question_main_id=1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resource not found", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestGetActiveMissingReturns404Body(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet,
		"/api/v1/practice-main?user_id=1&question_main_id=1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resource not found", body["error"])
	assert.Equal(t, "No active practice session found", body["message"])
}

func TestMalformedParamsReturn400(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet,
		"/api/v1/practice-main?user_id=abc&question_main_id=1", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Bad request", body["error"])
	assert.Contains(t, body["message"], "'abc'")

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/v1/practice-main/xyz",
		map[string]interface{}{"status": "completed"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPatchUnknownIDReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/v1/practice-main/999",
		map[string]interface{}{"status": "paused"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resource not found", body["error"])
}

func TestCreateValidatesBody(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/practice-main",
		map[string]interface{}{"user_id": 456})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Bad request", body["error"])
}

func TestCompleteNonPracticingReturns409(t *testing.T) {
	app, _ := newTestApp(t)

	_, created := doJSON(t, app, http.MethodPost, "/api/v1/practice-main",
		map[string]interface{}{"user_id": 9, "question_main_id": 2})
	id := int64(created["practice_main_id"].(float64))

	resp, _ := doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/practice-main/%d", id),
		map[string]interface{}{"status": "paused"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/practice-main/%d", id),
		map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Conflict", body["error"])
}
