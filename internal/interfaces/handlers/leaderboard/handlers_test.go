package leaderboard

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	activitysvc "impulseshield-backend/internal/application/activity"
	leadersvc "impulseshield-backend/internal/application/leaderboard"
	"impulseshield-backend/internal/blobstore"
	"impulseshield-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard(t *testing.T) {
	store := blobstore.NewMemoryStore()
	l := ledger.New(context.Background(), store)
	act := activitysvc.New(context.Background(), l, store)
	h := &Handlers{Service: &leadersvc.Service{Ledger: l, Activity: act}}

	app := fiber.New()
	app.Get("/leaderboard", h.Get)

	resp, err := app.Test(httptest.NewRequest("GET", "/leaderboard", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	data, _ := result["data"].(map[string]interface{})

	entries, _ := data["entries"].([]interface{})
	require.Len(t, entries, 6)
	first, _ := entries[0].(map[string]interface{})
	assert.EqualValues(t, 1, first["rank"])

	stats, _ := data["stats"].(map[string]interface{})
	assert.EqualValues(t, 12, stats["streakDays"])
	assert.EqualValues(t, 493000, stats["totalDiverted"])
}
