package activity

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"impulseshield-backend/internal/blobstore"
	"impulseshield-backend/internal/domain"
	"impulseshield-backend/internal/ledger"

	"github.com/rs/zerolog/log"
)

// StreakKey is the blob-store key the streak counter is persisted under,
// separate from the ledger snapshot.
const StreakKey = "activity:streak"

const seedStreakDays = 12

var (
	ErrTransactionNotFound = errors.New("Transaction not found")
	ErrTransactionSettled  = errors.New("Transaction already settled")
	ErrNoGoals             = errors.New("No goals available to divert into")
)

// etfDatabase maps tickers to the funds recommended in nudges.
var etfDatabase = map[string]domain.ETFRecommendation{
	"SGOV": {Ticker: "SGOV", Name: "iShares 0-3 Month Treasury Bond ETF", Description: "Ultra-safe short-term treasuries for near-term goals.", Type: "bond", RiskLevel: "low"},
	"VTI":  {Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Description: "Total US stock market - maximum diversification.", Type: "index", RiskLevel: "moderate"},
	"VOO":  {Ticker: "VOO", Name: "Vanguard S&P 500 ETF", Description: "S&P 500 - proven long-term growth.", Type: "index", RiskLevel: "moderate"},
	"SCHD": {Ticker: "SCHD", Name: "Schwab US Dividend Equity ETF", Description: "Dividend-focused for income + growth.", Type: "index", RiskLevel: "moderate"},
	"QQQ":  {Ticker: "QQQ", Name: "Invesco QQQ Trust", Description: "Tech-heavy Nasdaq for aggressive growth.", Type: "thematic", RiskLevel: "aggressive"},
}

// Service tracks detected impulse transactions and routes "divert" decisions
// into the savings ledger. Diverting is the only code path that both
// contributes to a goal and records a transaction outcome; the ledger's
// Contribute stays goal-only.
type Service struct {
	Ledger *ledger.Ledger
	Store  blobstore.Store

	mu           sync.Mutex
	transactions []domain.ImpulseTransaction
	streakDays   int
}

// New seeds the pending-transaction feed and restores the streak counter.
func New(ctx context.Context, l *ledger.Ledger, store blobstore.Store) *Service {
	s := &Service{
		Ledger:       l,
		Store:        store,
		transactions: seedTransactions(),
		streakDays:   seedStreakDays,
	}
	if blob, ok, err := store.Load(ctx, StreakKey); err == nil && ok {
		if days, perr := strconv.Atoi(string(blob)); perr == nil {
			s.streakDays = days
		}
	}
	return s
}

func seedTransactions() []domain.ImpulseTransaction {
	now := time.Now()
	return []domain.ImpulseTransaction{
		{ID: "t1", MerchantName: "Zara", Category: "Fashion", Amount: 87.50, Date: now.Add(-2 * time.Hour).Format(time.RFC3339), IsImpulse: true, Status: domain.StatusPending},
		{ID: "t2", MerchantName: "Starbucks", Category: "Dining", Amount: 6.25, Date: now.Add(-26 * time.Hour).Format(time.RFC3339), IsImpulse: true, Status: domain.StatusDiverted},
		{ID: "t3", MerchantName: "Amazon", Category: "Shopping", Amount: 129.99, Date: now.Add(-48 * time.Hour).Format(time.RFC3339), IsImpulse: true, Status: domain.StatusSpent},
	}
}

// Transactions returns the feed, optionally filtered by status
// ("pending", "diverted", "spent"); any other filter returns everything.
func (s *Service) Transactions(filter string) []domain.ImpulseTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ImpulseTransaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if filter == "" || filter == "all" || string(tx.Status) == filter {
			out = append(out, tx)
		}
	}
	return out
}

// StreakDays returns the current diversion streak.
func (s *Service) StreakDays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streakDays
}

// TotalSaved sums the amounts of all diverted transactions.
func (s *Service) TotalSaved() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := 0.0
	for _, tx := range s.transactions {
		if tx.Status == domain.StatusDiverted {
			sum += tx.Amount
		}
	}
	return sum
}

// HandleNudge settles a pending transaction. "invested" contributes the
// amount to the chosen goal (first goal when goalID is empty), marks the
// transaction diverted, and extends the streak; "ignored" marks it spent.
func (s *Service) HandleNudge(ctx context.Context, txID string, action domain.NudgeAction, goalID string) (domain.ImpulseTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.transactions {
		if s.transactions[i].ID == txID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ImpulseTransaction{}, ErrTransactionNotFound
	}
	if s.transactions[idx].Status != domain.StatusPending {
		return domain.ImpulseTransaction{}, ErrTransactionSettled
	}

	if action != domain.NudgeInvested {
		s.transactions[idx].Status = domain.StatusSpent
		return s.transactions[idx], nil
	}

	if goalID == "" {
		goals := s.Ledger.Goals()
		if len(goals) == 0 {
			return domain.ImpulseTransaction{}, ErrNoGoals
		}
		goalID = goals[0].ID
	}
	if !s.Ledger.Contribute(goalID, s.transactions[idx].Amount) {
		return domain.ImpulseTransaction{}, ErrNoGoals
	}

	s.transactions[idx].Status = domain.StatusDiverted
	s.streakDays++
	if err := s.Store.Save(ctx, StreakKey, []byte(strconv.Itoa(s.streakDays))); err != nil {
		log.Warn().Err(err).Str("key", StreakKey).Msg("Streak persist failed")
	}
	return s.transactions[idx], nil
}

// Recommend picks a fund for the goal by time horizon; category refines the
// medium/long buckets.
func (s *Service) Recommend(goal domain.Goal, category domain.GoalCategory) domain.ETFRecommendation {
	switch goal.TimeHorizon {
	case domain.HorizonShort:
		return etfDatabase["SGOV"]
	case domain.HorizonMedium:
		if category == domain.CategoryHome {
			return etfDatabase["SCHD"]
		}
		return etfDatabase["VTI"]
	case domain.HorizonLong:
		if category == domain.CategoryRetirement {
			return etfDatabase["VOO"]
		}
		return etfDatabase["QQQ"]
	default:
		return etfDatabase["VTI"]
	}
}
