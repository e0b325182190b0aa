package simulator

import (
	"errors"
	"math"
	"math/rand"

	"impulseshield-backend/internal/domain"
	"impulseshield-backend/internal/ledger"
)

const (
	projectionYears = 10

	stockReturnRate        = 0.15
	shortHorizonReturnRate = 0.045
	defaultReturnRate      = 0.07
)

var (
	ErrUnknownGoal        = errors.New("Goal not found")
	ErrUnknownDestination = errors.New("Destination must be goal or stock")
)

// Scenario is a hypothetical impulse purchase used by the spending
// simulator flow.
type Scenario struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Emoji    string  `json:"emoji"`
}

var spendingScenarios = []Scenario{
	{Merchant: "Zara", Amount: 127.50, Category: "Fashion", Emoji: "👗"},
	{Merchant: "Nike Store", Amount: 89.99, Category: "Shopping", Emoji: "👟"},
	{Merchant: "Starbucks", Amount: 8.75, Category: "Coffee", Emoji: "☕"},
	{Merchant: "Amazon", Amount: 64.99, Category: "Shopping", Emoji: "📦"},
	{Merchant: "DoorDash", Amount: 35.40, Category: "Food Delivery", Emoji: "🍔"},
	{Merchant: "Apple Store", Amount: 199.99, Category: "Electronics", Emoji: "📱"},
}

// GoalImpact quantifies what spending an amount would cost one goal.
type GoalImpact struct {
	Goal             domain.Goal `json:"goal"`
	PercentageOfGoal float64     `json:"percentageOfGoal"`
	DaysDelayed      int         `json:"daysDelayed"`
}

// Projection is a 10-year compound-growth estimate for a diverted amount.
type Projection struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	ReturnRate  float64 `json:"returnRate"`
	Years       int     `json:"years"`
	FutureValue float64 `json:"futureValue"`
	Profit      float64 `json:"profit"`
}

// Service drives the "test spending control" mini-flow: pick a scenario,
// show what it costs each goal, project the diverted alternative, and
// commit the diversion into the ledger.
type Service struct {
	Ledger *ledger.Ledger
	Rand   *rand.Rand // optional; nil uses the global source
}

// Scenarios returns the fixed scenario catalog.
func (s *Service) Scenarios() []Scenario {
	return append([]Scenario(nil), spendingScenarios...)
}

// RandomScenario picks one scenario for a simulation run.
func (s *Service) RandomScenario() Scenario {
	if s.Rand != nil {
		return spendingScenarios[s.Rand.Intn(len(spendingScenarios))]
	}
	return spendingScenarios[rand.Intn(len(spendingScenarios))]
}

// GoalImpact computes, per goal, the amount as a percentage of the target
// and how many days the purchase would push the goal back (capped at a
// year; fully funded goals are not delayed).
func (s *Service) GoalImpact(amount float64) []GoalImpact {
	goals := s.Ledger.Goals()
	out := make([]GoalImpact, 0, len(goals))
	for _, g := range goals {
		impact := GoalImpact{Goal: g}
		if g.TargetAmount > 0 {
			impact.PercentageOfGoal = amount / g.TargetAmount * 100
		}
		remaining := g.TargetAmount - g.CurrentAmount
		if remaining > 0 {
			days := int(math.Round(amount / remaining * 365))
			if days > 365 {
				days = 365
			}
			impact.DaysDelayed = days
		}
		out = append(out, impact)
	}
	return out
}

// ProjectStock estimates 10-year growth of amount at the stock return rate.
func (s *Service) ProjectStock(amount float64, ticker, name string) Projection {
	return project(amount, ticker, name, stockReturnRate)
}

// ProjectGoal estimates 10-year growth of amount at a conservative rate
// picked from the goal's time horizon.
func (s *Service) ProjectGoal(amount float64, goalID string) (Projection, error) {
	g, ok := s.Ledger.Goal(goalID)
	if !ok {
		return Projection{}, ErrUnknownGoal
	}
	rate := defaultReturnRate
	if g.TimeHorizon == domain.HorizonShort {
		rate = shortHorizonReturnRate
	}
	return project(amount, "GOAL", g.Title, rate), nil
}

func project(amount float64, ticker, name string, rate float64) Projection {
	future := amount * math.Pow(1+rate, projectionYears)
	return Projection{
		Ticker:      ticker,
		Name:        name,
		ReturnRate:  rate,
		Years:       projectionYears,
		FutureValue: future,
		Profit:      future - amount,
	}
}

// Divert commits the simulated amount: into a goal via Contribute or into a
// holding via BuyStock.
func (s *Service) Divert(destination, id string, amount float64, name string) error {
	switch destination {
	case "goal":
		if !s.Ledger.Contribute(id, amount) {
			return ErrUnknownGoal
		}
		return nil
	case "stock":
		s.Ledger.BuyStock(id, amount, name)
		return nil
	default:
		return ErrUnknownDestination
	}
}
