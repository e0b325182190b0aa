package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	activitysvc "impulseshield-backend/internal/application/activity"
	"impulseshield-backend/internal/blobstore"
	"impulseshield-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupActivityTest(t *testing.T) (*fiber.App, *ledger.Ledger) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	l := ledger.New(context.Background(), store)
	svc := activitysvc.New(context.Background(), l, store)
	h := &Handlers{Service: svc, Ledger: l}

	app := fiber.New()
	app.Get("/transactions", h.Transactions)
	app.Post("/nudge", h.Nudge)
	app.Get("/recommendation/:goalId", h.Recommendation)
	return app, l
}

func request(t *testing.T, app *fiber.App, method, path string, payload interface{}) (map[string]interface{}, int) {
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

func TestTransactions_List(t *testing.T) {
	app, _ := setupActivityTest(t)

	result, status := request(t, app, "GET", "/transactions", nil)
	assert.Equal(t, 200, status)
	data, _ := result["data"].([]interface{})
	assert.Len(t, data, 3)

	result, _ = request(t, app, "GET", "/transactions?filter=pending", nil)
	data, _ = result["data"].([]interface{})
	assert.Len(t, data, 1)
	meta, _ := result["metadata"].(map[string]interface{})
	assert.EqualValues(t, 12, meta["streakDays"])
}

func TestNudge_Invested(t *testing.T) {
	app, l := setupActivityTest(t)
	before, _ := l.Goal("g1")

	result, status := request(t, app, "POST", "/nudge", map[string]interface{}{
		"transaction_id": "t1", "action": "invested",
	})
	require.Equal(t, 200, status)
	data, _ := result["data"].(map[string]interface{})
	assert.Equal(t, "diverted", data["status"])
	meta, _ := result["metadata"].(map[string]interface{})
	assert.EqualValues(t, 13, meta["streakDays"])

	after, _ := l.Goal("g1")
	assert.InDelta(t, before.CurrentAmount+87.50, after.CurrentAmount, 1e-9)
}

func TestNudge_Errors(t *testing.T) {
	app, _ := setupActivityTest(t)

	_, status := request(t, app, "POST", "/nudge", map[string]interface{}{"transaction_id": "t1"})
	assert.Equal(t, 400, status)

	_, status = request(t, app, "POST", "/nudge", map[string]interface{}{"transaction_id": "t1", "action": "hodl"})
	assert.Equal(t, 400, status)

	_, status = request(t, app, "POST", "/nudge", map[string]interface{}{"transaction_id": "nope", "action": "invested"})
	assert.Equal(t, 404, status)

	_, status = request(t, app, "POST", "/nudge", map[string]interface{}{"transaction_id": "t3", "action": "invested"})
	assert.Equal(t, 409, status)
}

func TestRecommendation(t *testing.T) {
	app, _ := setupActivityTest(t)

	// g2 is the short-horizon seed goal
	result, status := request(t, app, "GET", "/recommendation/g2", nil)
	require.Equal(t, 200, status)
	data, _ := result["data"].(map[string]interface{})
	assert.Equal(t, "SGOV", data["ticker"])

	result, status = request(t, app, "GET", "/recommendation/g1?category=home", nil)
	require.Equal(t, 200, status)
	data, _ = result["data"].(map[string]interface{})
	assert.Equal(t, "SCHD", data["ticker"])

	_, status = request(t, app, "GET", "/recommendation/missing", nil)
	assert.Equal(t, 404, status)
}
