package health

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	h := &Handlers{}
	app := fiber.New()
	app.Get("/api", h.Root)

	resp, err := app.Test(httptest.NewRequest("GET", "/api", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "API is running...", string(body))
}

func TestTestDB_NoClient(t *testing.T) {
	h := &Handlers{Client: nil, DBName: "marketplace"}
	app := fiber.New()
	app.Get("/api/test-db", h.TestDB)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/test-db", nil))
	require.NoError(t, err)
	// always 200; the success flag carries the outcome
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "MongoDB NOT Connected", result["message"])
}
