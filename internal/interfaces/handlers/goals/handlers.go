package goals

import (
	"impulseshield-backend/internal/domain"
	"impulseshield-backend/internal/ledger"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Ledger *ledger.Ledger
}

// List GET /api/v1/goals
func (h *Handlers) List(c *fiber.Ctx) error {
	goals := h.Ledger.Goals()
	return response.Success(c, "Goals retrieved", goals, fiber.Map{
		"count":      len(goals),
		"totalValue": h.Ledger.TotalGoalsValue(),
	})
}

// Create POST /api/v1/goals
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		ImageURL     string  `json:"imageUrl"`
		TargetAmount float64 `json:"targetAmount"`
		TimeHorizon  string  `json:"timeHorizon"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Title == "" || body.TargetAmount == 0 {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.TargetAmount <= 0 {
		return response.Error(c, "Target amount must be a positive number", 400, nil)
	}
	horizon := domain.TimeHorizon(body.TimeHorizon)
	switch horizon {
	case domain.HorizonShort, domain.HorizonMedium, domain.HorizonLong:
	default:
		return response.Error(c, "Time horizon must be short, medium or long", 400, nil)
	}

	g := h.Ledger.AddGoal(body.Title, body.Description, body.ImageURL, body.TargetAmount, horizon)
	return response.SuccessCreated(c, "Goal created", g, nil)
}

// Contribute POST /api/v1/goals/:id/contribute
//
// An unknown goal id is not an error: the ledger contract is a non-throwing
// no-op, surfaced here as applied:false so clients can tell the difference.
func (h *Handlers) Contribute(c *fiber.Ctx) error {
	goalID := c.Params("id")

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Amount == 0 {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Amount <= 0 {
		return response.Error(c, "Amount must be a positive number", 400, nil)
	}

	applied := h.Ledger.Contribute(goalID, body.Amount)
	if !applied {
		return response.Success(c, "Goal not found, nothing applied", fiber.Map{"applied": false}, nil)
	}
	g, _ := h.Ledger.Goal(goalID)
	return response.Success(c, "Contribution applied", fiber.Map{
		"applied": true,
		"goal":    g,
	}, nil)
}
