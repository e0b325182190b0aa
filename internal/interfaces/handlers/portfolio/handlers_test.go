package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"impulseshield-backend/internal/blobstore"
	"impulseshield-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPortfolioTest(t *testing.T) (*fiber.App, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(context.Background(), blobstore.NewMemoryStore())
	h := &Handlers{Ledger: l}

	app := fiber.New()
	app.Get("/portfolio", h.List)
	app.Post("/portfolio/buy", h.Buy)
	app.Get("/portfolio/performance", h.Performance)
	app.Get("/portfolio/allocation", h.Allocation)
	return app, l
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (map[string]interface{}, int) {
	t.Helper()
	r := httptest.NewRequest(method, path, nil)
	if payload != nil {
		body, _ := json.Marshal(payload)
		r = httptest.NewRequest(method, path, bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(r)
	require.NoError(t, err)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result, resp.StatusCode
}

func TestListPortfolio(t *testing.T) {
	app, _ := setupPortfolioTest(t)

	result, status := doJSON(t, app, "GET", "/portfolio", nil)
	assert.Equal(t, 200, status)
	data, _ := result["data"].([]interface{})
	assert.Len(t, data, 4)
	meta, _ := result["metadata"].(map[string]interface{})
	assert.InDelta(t, 57031.50, meta["totalValue"], 1e-6)
}

func TestBuy_NewTicker(t *testing.T) {
	app, l := setupPortfolioTest(t)

	result, status := doJSON(t, app, "POST", "/portfolio/buy", map[string]interface{}{
		"ticker": "aapl", "amount": 100.0, "name": "Apple Inc.",
	})
	require.Equal(t, 200, status)
	data, _ := result["data"].(map[string]interface{})
	assert.Equal(t, "AAPL", data["ticker"])
	assert.EqualValues(t, 100, data["value"])
	assert.Equal(t, "general_investing", data["goalId"])
	assert.Len(t, l.Portfolio(), 5)
}

func TestBuy_ExistingTickerIncrements(t *testing.T) {
	app, l := setupPortfolioTest(t)

	_, status := doJSON(t, app, "POST", "/portfolio/buy", map[string]interface{}{
		"ticker": "VTI", "amount": 69.50,
	})
	require.Equal(t, 200, status)
	assert.Len(t, l.Portfolio(), 4)
	for _, inv := range l.Portfolio() {
		if inv.Ticker == "VTI" {
			assert.InDelta(t, 15500.0, inv.Value, 1e-9)
		}
	}
}

func TestBuy_Validation(t *testing.T) {
	app, _ := setupPortfolioTest(t)

	_, status := doJSON(t, app, "POST", "/portfolio/buy", map[string]interface{}{"amount": 100.0})
	assert.Equal(t, 400, status)

	_, status = doJSON(t, app, "POST", "/portfolio/buy", map[string]interface{}{"ticker": "AAPL", "amount": -5.0})
	assert.Equal(t, 400, status)
}

func TestPerformance_GrowsWithBuys(t *testing.T) {
	app, _ := setupPortfolioTest(t)

	result, _ := doJSON(t, app, "GET", "/portfolio/performance", nil)
	series, _ := result["data"].([]interface{})
	require.Len(t, series, 6)

	_, status := doJSON(t, app, "POST", "/portfolio/buy", map[string]interface{}{"ticker": "NVDA", "amount": 300.0, "name": "NVIDIA Corp."})
	require.Equal(t, 200, status)

	result, _ = doJSON(t, app, "GET", "/portfolio/performance", nil)
	series, _ = result["data"].([]interface{})
	require.Len(t, series, 7)
	last, _ := series[6].(map[string]interface{})
	assert.EqualValues(t, 46300, last["portfolioValue"])
	assert.Equal(t, "Now", last["date"])
}

func TestAllocation_SumsToRoughly100(t *testing.T) {
	app, _ := setupPortfolioTest(t)

	result, status := doJSON(t, app, "GET", "/portfolio/allocation", nil)
	assert.Equal(t, 200, status)
	slices, _ := result["data"].([]interface{})
	require.Len(t, slices, 4)

	total := 0.0
	for _, s := range slices {
		m, _ := s.(map[string]interface{})
		total += m["percentage"].(float64)
	}
	// Integer rounding keeps the sum within one point of 100
	assert.InDelta(t, 100, total, 1)
}
