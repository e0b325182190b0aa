package learn

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessons(t *testing.T) {
	h := &Handlers{}
	app := fiber.New()
	app.Get("/lessons", h.Lessons)

	resp, err := app.Test(httptest.NewRequest("GET", "/lessons", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	data, _ := result["data"].([]interface{})
	assert.Len(t, data, 6)

	resp, err = app.Test(httptest.NewRequest("GET", "/lessons?category=etfs", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	data, _ = result["data"].([]interface{})
	assert.Len(t, data, 2)
	for _, row := range data {
		lesson, _ := row.(map[string]interface{})
		assert.Equal(t, "etfs", lesson["category"])
	}
}
