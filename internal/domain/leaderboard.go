package domain

// LeaderboardEntry is one row of the top-savers board.
type LeaderboardEntry struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	TotalDiverted float64  `json:"totalDiverted"`
	StreakDays    int      `json:"streakDays"`
	Badges        []string `json:"badges"`
	Rank          int      `json:"rank"`
}

// Lesson is a piece of educational content shown on the learn tab.
type Lesson struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"` // basics | etfs | risk
	Icon        string   `json:"icon"`
	Content     []string `json:"content"`
}

// Stock is a quote row from the (mock) market list.
type Stock struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// StockDetail is the expanded view for a single ticker.
type StockDetail struct {
	Stock
	Description string `json:"description"`
}
