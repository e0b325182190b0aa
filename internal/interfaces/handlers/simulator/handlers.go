package simulator

import (
	"errors"

	simsvc "impulseshield-backend/internal/application/simulator"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *simsvc.Service
}

// Scenarios GET /api/v1/simulator/scenarios
func (h *Handlers) Scenarios(c *fiber.Ctx) error {
	return response.Success(c, "Scenarios retrieved", h.Service.Scenarios(), fiber.Map{
		"suggested": h.Service.RandomScenario(),
	})
}

// Impact POST /api/v1/simulator/impact
func (h *Handlers) Impact(c *fiber.Ctx) error {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Amount <= 0 {
		return response.Error(c, "Amount must be a positive number", 400, nil)
	}
	return response.Success(c, "Goal impact computed", h.Service.GoalImpact(body.Amount), nil)
}

// Projection POST /api/v1/simulator/projection
//
// Either ticker (stock projection) or goal_id (goal projection) must be set.
func (h *Handlers) Projection(c *fiber.Ctx) error {
	var body struct {
		Amount float64 `json:"amount"`
		Ticker string  `json:"ticker"`
		Name   string  `json:"name"`
		GoalID string  `json:"goal_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Amount <= 0 {
		return response.Error(c, "Amount must be a positive number", 400, nil)
	}

	if body.Ticker != "" {
		return response.Success(c, "Projection computed", h.Service.ProjectStock(body.Amount, body.Ticker, body.Name), nil)
	}
	if body.GoalID != "" {
		p, err := h.Service.ProjectGoal(body.Amount, body.GoalID)
		if err != nil {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Success(c, "Projection computed", p, nil)
	}
	return response.Error(c, "Missing required fields", 400, nil)
}

// Divert POST /api/v1/simulator/divert
func (h *Handlers) Divert(c *fiber.Ctx) error {
	var body struct {
		Destination string  `json:"destination"`
		ID          string  `json:"id"`
		Amount      float64 `json:"amount"`
		Name        string  `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Destination == "" || body.ID == "" || body.Amount == 0 {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.Amount <= 0 {
		return response.Error(c, "Amount must be a positive number", 400, nil)
	}

	if err := h.Service.Divert(body.Destination, body.ID, body.Amount, body.Name); err != nil {
		switch {
		case errors.Is(err, simsvc.ErrUnknownGoal):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, simsvc.ErrUnknownDestination):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.Success(c, "Diversion applied", fiber.Map{
		"destination": body.Destination,
		"id":          body.ID,
		"amount":      body.Amount,
	}, nil)
}
