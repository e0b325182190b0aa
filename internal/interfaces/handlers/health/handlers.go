package health

import (
	healthsvc "impulseshield-backend/internal/application/health"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Storage string
	Rdb     *redis.Client
	DB      healthsvc.DBPinger
}

// JSON GET /health/json
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.Collect(c.Context(), h.Storage, h.Rdb, h.DB)
	status := fiber.StatusOK
	if result.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
