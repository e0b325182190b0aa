package portfolio

import (
	"strings"

	"impulseshield-backend/internal/ledger"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Ledger *ledger.Ledger
}

// List GET /api/v1/portfolio
func (h *Handlers) List(c *fiber.Ctx) error {
	holdings := h.Ledger.Portfolio()
	return response.Success(c, "Portfolio retrieved", holdings, fiber.Map{
		"count":      len(holdings),
		"totalValue": h.Ledger.TotalInvestmentsValue(),
	})
}

// Buy POST /api/v1/portfolio/buy
func (h *Handlers) Buy(c *fiber.Ctx) error {
	var body struct {
		Ticker string  `json:"ticker"`
		Amount float64 `json:"amount"`
		Name   string  `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	body.Ticker = strings.ToUpper(strings.TrimSpace(body.Ticker))
	if body.Ticker == "" || body.Amount == 0 {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Amount <= 0 {
		return response.Error(c, "Amount must be a positive number", 400, nil)
	}
	if body.Name == "" {
		body.Name = body.Ticker
	}

	h.Ledger.BuyStock(body.Ticker, body.Amount, body.Name)

	for _, inv := range h.Ledger.Portfolio() {
		if inv.Ticker == body.Ticker {
			return response.Success(c, "Purchase applied", inv, nil)
		}
	}
	// Unreachable: BuyStock always leaves a holding for the ticker
	return response.Error(c, "Internal Server Error", 500, nil)
}

// Performance GET /api/v1/portfolio/performance
func (h *Handlers) Performance(c *fiber.Ctx) error {
	return response.Success(c, "Performance series retrieved", h.Ledger.PerformanceData(), nil)
}

// Allocation GET /api/v1/portfolio/allocation
func (h *Handlers) Allocation(c *fiber.Ctx) error {
	return response.Success(c, "Allocation retrieved", h.Ledger.Allocation(), nil)
}
