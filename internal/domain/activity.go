package domain

// TransactionStatus tracks what happened to a detected impulse purchase.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusDiverted TransactionStatus = "diverted"
	StatusSpent    TransactionStatus = "spent"
)

// ImpulseTransaction is a detected card transaction flagged for a nudge.
type ImpulseTransaction struct {
	ID           string            `json:"id"`
	MerchantName string            `json:"merchantName"`
	Category     string            `json:"category"`
	Amount       float64           `json:"amount"`
	Date         string            `json:"date"`
	IsImpulse    bool              `json:"isImpulse"`
	Status       TransactionStatus `json:"status"`
}

// NudgeAction is the user's response to a nudge.
type NudgeAction string

const (
	NudgeInvested NudgeAction = "invested"
	NudgeIgnored  NudgeAction = "ignored"
)

// ETFRecommendation is a suggested fund for diverting an impulse purchase,
// matched to a goal's time horizon.
type ETFRecommendation struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`      // index | bond | thematic | esg
	RiskLevel   string `json:"riskLevel"` // low | moderate | aggressive
}
