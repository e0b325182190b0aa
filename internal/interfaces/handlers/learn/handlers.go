package learn

import (
	learnsvc "impulseshield-backend/internal/application/learn"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct{}

// Lessons GET /api/v1/learn/lessons?category=basics|etfs|risk
func (h *Handlers) Lessons(c *fiber.Ctx) error {
	lessons := learnsvc.Lessons(c.Query("category"))
	return response.Success(c, "Lessons retrieved", lessons, fiber.Map{"count": len(lessons)})
}
