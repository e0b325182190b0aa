package leaderboard

import (
	leadersvc "impulseshield-backend/internal/application/leaderboard"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *leadersvc.Service
}

// Get GET /api/v1/leaderboard
func (h *Handlers) Get(c *fiber.Ctx) error {
	return response.Success(c, "Leaderboard retrieved", fiber.Map{
		"entries": h.Service.TopSavers(),
		"stats":   h.Service.Stats(),
	}, nil)
}
