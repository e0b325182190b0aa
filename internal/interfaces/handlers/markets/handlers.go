package markets

import (
	"errors"

	marketsvc "impulseshield-backend/internal/application/markets"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct{}

// Search GET /api/v1/markets/stocks?q=app
func (h *Handlers) Search(c *fiber.Ctx) error {
	results := marketsvc.Search(c.Query("q"))
	return response.Success(c, "Stocks retrieved", results, fiber.Map{"count": len(results)})
}

// Get GET /api/v1/markets/stocks/:ticker
func (h *Handlers) Get(c *fiber.Ctx) error {
	detail, err := marketsvc.Get(c.Params("ticker"))
	if err != nil {
		if errors.Is(err, marketsvc.ErrUnknownTicker) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Stock retrieved", detail, nil)
}
