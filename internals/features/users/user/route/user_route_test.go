package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "hellointerview_backend/internals/helpers"
	"hellointerview_backend/internals/testhelpers"
)

func postUser(t *testing.T, app *fiber.App, email, name string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"email": email, "name": name})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestUserCreateAndGet(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	UserRoutes(app.Group("/api/v1"), db)

	resp := postUser(t, app, "Ada@Example.com", "Ada")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "ada@example.com", created["email"])

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/2", nil)
	getResp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestUserDuplicateEmailConflicts(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	UserRoutes(app.Group("/api/v1"), db)

	resp := postUser(t, app, "dup@example.com", "First")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postUser(t, app, "dup@example.com", "Second")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Conflict", body["error"])
}

func TestUserCreateValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	UserRoutes(app.Group("/api/v1"), db)

	resp := postUser(t, app, "not-an-email", "Name")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
