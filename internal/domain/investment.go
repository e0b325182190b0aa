package domain

// GeneralInvestingGoalID tags holdings bought outside any goal flow.
const GeneralInvestingGoalID = "general_investing"

// Investment is a portfolio holding. Ticker is the natural key: purchases
// find-or-create by ticker. GoalID is a loose association tag, not a
// referential-integrity relationship; orphaned values are tolerated.
type Investment struct {
	Name        string  `json:"name"`
	Ticker      string  `json:"ticker"`
	Value       float64 `json:"value"`
	GainPercent float64 `json:"gainPercent"`
	IsPositive  bool    `json:"isPositive"`
	GoalID      string  `json:"goalId"`
}

// PerformancePoint is one entry of the portfolio performance series.
// Date is a display label, not an ordering key.
type PerformancePoint struct {
	Date           string  `json:"date"`
	PortfolioValue float64 `json:"portfolioValue"`
}

// Snapshot is the full persisted state of the savings ledger, written as a
// single blob. No schema version field; an undecodable stored blob is
// treated the same as an absent one.
type Snapshot struct {
	Goals           []Goal             `json:"goals"`
	Portfolio       []Investment       `json:"portfolio"`
	PerformanceData []PerformancePoint `json:"performanceData"`
}
