package dashboard

import (
	activitysvc "impulseshield-backend/internal/application/activity"
	"impulseshield-backend/internal/ledger"
	"impulseshield-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Ledger   *ledger.Ledger
	Activity *activitysvc.Service
}

// Get GET /api/v1/dashboard. The home screen in one payload.
func (h *Handlers) Get(c *fiber.Ctx) error {
	return response.Success(c, "Dashboard retrieved", fiber.Map{
		"totalSavings":          h.Ledger.TotalSavings(),
		"totalInvestmentsValue": h.Ledger.TotalInvestmentsValue(),
		"totalGoalsValue":       h.Ledger.TotalGoalsValue(),
		"summary":               h.Ledger.Summary(),
		"savingsBreakdown":      h.Ledger.SavingsBreakdown(),
		"streakDays":            h.Activity.StreakDays(),
		"totalSaved":            h.Activity.TotalSaved(),
	}, nil)
}
