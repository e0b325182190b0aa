package markets

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMarketsTest() *fiber.App {
	h := &Handlers{}
	app := fiber.New()
	app.Get("/stocks", h.Search)
	app.Get("/stocks/:ticker", h.Get)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (map[string]interface{}, int) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result, resp.StatusCode
}

func TestSearch(t *testing.T) {
	app := setupMarketsTest()

	result, status := get(t, app, "/stocks")
	assert.Equal(t, 200, status)
	data, _ := result["data"].([]interface{})
	assert.Len(t, data, 10)

	result, _ = get(t, app, "/stocks?q=apple")
	data, _ = result["data"].([]interface{})
	require.Len(t, data, 1)
	row, _ := data[0].(map[string]interface{})
	assert.Equal(t, "AAPL", row["symbol"])

	result, _ = get(t, app, "/stocks?q=zzz")
	data, _ = result["data"].([]interface{})
	assert.Empty(t, data)
}

func TestGetTicker(t *testing.T) {
	app := setupMarketsTest()

	result, status := get(t, app, "/stocks/nvda")
	require.Equal(t, 200, status)
	data, _ := result["data"].(map[string]interface{})
	assert.Equal(t, "NVDA", data["symbol"])
	assert.Contains(t, data["description"], "NVDA")

	_, status = get(t, app, "/stocks/NOPE")
	assert.Equal(t, 404, status)
}
