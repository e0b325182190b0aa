package activity

import (
	"errors"

	activitysvc "impulseshield-backend/internal/application/activity"
	"impulseshield-backend/internal/domain"
	"impulseshield-backend/internal/ledger"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *activitysvc.Service
	Ledger  *ledger.Ledger
}

// Transactions GET /api/v1/activity/transactions?filter=pending|diverted|spent
func (h *Handlers) Transactions(c *fiber.Ctx) error {
	txs := h.Service.Transactions(c.Query("filter"))
	return response.Success(c, "Transactions retrieved", txs, fiber.Map{
		"count":      len(txs),
		"totalSaved": h.Service.TotalSaved(),
		"streakDays": h.Service.StreakDays(),
	})
}

// Nudge POST /api/v1/activity/nudge
func (h *Handlers) Nudge(c *fiber.Ctx) error {
	var body struct {
		TransactionID string `json:"transaction_id"`
		Action        string `json:"action"`
		GoalID        string `json:"goal_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.TransactionID == "" || body.Action == "" {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	action := domain.NudgeAction(body.Action)
	if action != domain.NudgeInvested && action != domain.NudgeIgnored {
		return response.Error(c, "Action must be invested or ignored", 400, nil)
	}

	tx, err := h.Service.HandleNudge(c.Context(), body.TransactionID, action, body.GoalID)
	if err != nil {
		switch {
		case errors.Is(err, activitysvc.ErrTransactionNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, activitysvc.ErrTransactionSettled):
			return response.Error(c, err.Error(), 409, nil)
		case errors.Is(err, activitysvc.ErrNoGoals):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.Success(c, "Nudge handled", tx, fiber.Map{
		"streakDays": h.Service.StreakDays(),
	})
}

// Recommendation GET /api/v1/activity/recommendation/:goalId?category=home
func (h *Handlers) Recommendation(c *fiber.Ctx) error {
	g, ok := h.Ledger.Goal(c.Params("goalId"))
	if !ok {
		return response.Error(c, "Goal not found", 404, nil)
	}
	rec := h.Service.Recommend(g, domain.GoalCategory(c.Query("category")))
	return response.Success(c, "Recommendation retrieved", rec, nil)
}
