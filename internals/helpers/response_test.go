package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFiberErrorKeepsClassifiedErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Thing does not exist")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Resource not found", body["error"])
	assert.Equal(t, "Thing does not exist", body["message"])
}

func TestFromFiberErrorHidesInternalDetail(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: connection reset by peer")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body["message"], "pq:")
}
