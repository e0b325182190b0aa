package domain

// TimeHorizon drives display color/labeling only; it has no behavioral
// effect on the ledger.
type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "short"
	HorizonMedium TimeHorizon = "medium"
	HorizonLong   TimeHorizon = "long"
)

// Goal is a named savings target. CurrentAmount only grows: contributions
// add to it and no withdrawal operation exists. Over-funding past
// TargetAmount is allowed and simply displays as >100%.
type Goal struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	ImageURL      string      `json:"imageUrl"`
	TargetAmount  float64     `json:"targetAmount"`
	CurrentAmount float64     `json:"currentAmount"`
	TimeHorizon   TimeHorizon `json:"timeHorizon"`
}

// GoalCategory refines ETF recommendations for medium/long horizons.
type GoalCategory string

const (
	CategoryTravel     GoalCategory = "travel"
	CategoryHome       GoalCategory = "home"
	CategoryRetirement GoalCategory = "retirement"
	CategoryEducation  GoalCategory = "education"
	CategoryOther      GoalCategory = "other"
)
