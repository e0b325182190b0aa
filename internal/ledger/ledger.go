package ledger

import (
	"context"
	"encoding/json"
	"math"
	"sync"

	"impulseshield-backend/internal/blobstore"
	"impulseshield-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SnapshotKey is the fixed blob-store key the full ledger state lives under.
const SnapshotKey = "ledger:snapshot"

// Display colors cycled through by allocation/breakdown slices.
var slicePalette = []string{"#845EC2", "#FF6F91", "#00D2FC", "#FFC75F"}

// Ledger owns the goals, portfolio holdings, and performance series. All
// mutation goes through its methods; readers get copies, never the backing
// slices. Every mutation re-persists the full snapshot to the blob store,
// asynchronously and best-effort: a failed write is logged and otherwise
// unobserved, in-memory state stays authoritative.
type Ledger struct {
	mu    sync.RWMutex
	store blobstore.Store
	wg    sync.WaitGroup

	goals           []domain.Goal
	portfolio       []domain.Investment
	performanceData []domain.PerformancePoint
}

// New loads the persisted snapshot and adopts it verbatim when it carries a
// non-empty portfolio; otherwise (absent, undecodable, or empty portfolio)
// the seed dataset is installed and persisted. A load error is treated the
// same as an absent snapshot.
func New(ctx context.Context, store blobstore.Store) *Ledger {
	l := &Ledger{store: store}

	blob, ok, err := store.Load(ctx, SnapshotKey)
	if err != nil {
		log.Warn().Err(err).Str("key", SnapshotKey).Msg("Snapshot load failed, falling back to seed data")
	}

	var snap domain.Snapshot
	if ok && err == nil {
		if uerr := json.Unmarshal(blob, &snap); uerr != nil {
			log.Warn().Err(uerr).Str("key", SnapshotKey).Msg("Snapshot undecodable, falling back to seed data")
			snap = domain.Snapshot{}
		}
	}
	if len(snap.Portfolio) == 0 {
		snap = seedSnapshot()
		if serr := l.save(ctx, snap); serr != nil {
			log.Warn().Err(serr).Msg("Seed snapshot persist failed")
		}
	}

	l.goals = snap.Goals
	l.portfolio = snap.Portfolio
	l.performanceData = snap.PerformanceData
	return l
}

// Contribute adds amount to the goal's current amount. Unknown goal ids are
// an observable no-op: false is returned and no state changes. The ledger
// does not validate amount sign; callers gate non-positive input.
func (l *Ledger) Contribute(goalID string, amount float64) bool {
	l.mu.Lock()
	found := false
	for i := range l.goals {
		if l.goals[i].ID == goalID {
			l.goals[i].CurrentAmount += amount
			found = true
			break
		}
	}
	var snap domain.Snapshot
	if found {
		snap = l.snapshotLocked()
	}
	l.mu.Unlock()

	if found {
		log.Info().Str("goal_id", goalID).Float64("amount", amount).Msg("Contribution applied")
		l.persistAsync(snap)
	}
	return found
}

// BuyStock adds amount to the holding with the given ticker, creating the
// holding when the ticker is new. One performance point is appended whose
// value is the previous last point's value plus amount (amount itself when
// the series is empty).
func (l *Ledger) BuyStock(ticker string, amount float64, name string) {
	l.mu.Lock()
	existing := false
	for i := range l.portfolio {
		if l.portfolio[i].Ticker == ticker {
			l.portfolio[i].Value += amount
			existing = true
			break
		}
	}
	if !existing {
		l.portfolio = append(l.portfolio, domain.Investment{
			Name:        name,
			Ticker:      ticker,
			Value:       amount,
			GainPercent: 0,
			IsPositive:  true,
			GoalID:      domain.GeneralInvestingGoalID,
		})
	}

	prev := 0.0
	if n := len(l.performanceData); n > 0 {
		prev = l.performanceData[n-1].PortfolioValue
	}
	l.performanceData = append(l.performanceData, domain.PerformancePoint{
		Date:           "Now",
		PortfolioValue: prev + amount,
	})

	snap := l.snapshotLocked()
	l.mu.Unlock()

	log.Info().Str("ticker", ticker).Float64("amount", amount).Bool("new_holding", !existing).Msg("Stock purchase applied")
	l.persistAsync(snap)
}

// AddGoal creates a goal with a fresh id and zero progress.
func (l *Ledger) AddGoal(title, description, imageURL string, targetAmount float64, horizon domain.TimeHorizon) domain.Goal {
	g := domain.Goal{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  description,
		ImageURL:     imageURL,
		TargetAmount: targetAmount,
		TimeHorizon:  horizon,
	}

	l.mu.Lock()
	l.goals = append(l.goals, g)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	log.Info().Str("goal_id", g.ID).Str("title", g.Title).Msg("Goal created")
	l.persistAsync(snap)
	return g
}

// Goals returns a copy of the goal list in insertion order.
func (l *Ledger) Goals() []domain.Goal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Goal(nil), l.goals...)
}

// Goal returns the goal with the given id.
func (l *Ledger) Goal(goalID string) (domain.Goal, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, g := range l.goals {
		if g.ID == goalID {
			return g, true
		}
	}
	return domain.Goal{}, false
}

// Portfolio returns a copy of the holdings in insertion order.
func (l *Ledger) Portfolio() []domain.Investment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Investment(nil), l.portfolio...)
}

// PerformanceData returns a copy of the performance series.
func (l *Ledger) PerformanceData() []domain.PerformancePoint {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.PerformancePoint(nil), l.performanceData...)
}

// TotalInvestmentsValue sums all holding values.
func (l *Ledger) TotalInvestmentsValue() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalInvestmentsLocked()
}

// TotalGoalsValue sums all goal current amounts.
func (l *Ledger) TotalGoalsValue() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalGoalsLocked()
}

// TotalSavings is investments plus goals.
func (l *Ledger) TotalSavings() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalInvestmentsLocked() + l.totalGoalsLocked()
}

// SummaryMetrics is the dashboard day-change header.
type SummaryMetrics struct {
	DayChange        float64 `json:"dayChange"`
	DayChangePercent float64 `json:"dayChangePercent"`
}

// Summary returns the day-change header figures.
func (l *Ledger) Summary() SummaryMetrics {
	return SummaryMetrics{DayChange: 550.80, DayChangePercent: 0.97}
}

// AllocationSlice is one ticker's share of the portfolio.
type AllocationSlice struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
	Color      string  `json:"color"`
}

// Allocation recomputes the by-ticker breakdown from the live portfolio.
func (l *Ledger) Allocation() []AllocationSlice {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := l.totalInvestmentsLocked()
	out := make([]AllocationSlice, 0, len(l.portfolio))
	for i, inv := range l.portfolio {
		pct := 0
		if total > 0 {
			pct = int(math.Round(inv.Value / total * 100))
		}
		out = append(out, AllocationSlice{
			Label:      inv.Ticker,
			Amount:     inv.Value,
			Percentage: pct,
			Color:      slicePalette[i%len(slicePalette)],
		})
	}
	return out
}

// BreakdownSlice is one bucket of the investments-vs-goals split.
type BreakdownSlice struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent int     `json:"percent"`
	Color   string  `json:"color"`
}

// SavingsBreakdown splits total savings into the Investments and Goals
// buckets. Both percentages are 0 when total savings is 0.
func (l *Ledger) SavingsBreakdown() []BreakdownSlice {
	l.mu.RLock()
	defer l.mu.RUnlock()

	investments := l.totalInvestmentsLocked()
	goals := l.totalGoalsLocked()
	total := investments + goals

	investPct, goalsPct := 0, 0
	if total > 0 {
		investPct = int(math.Round(investments / total * 100))
		goalsPct = int(math.Round(goals / total * 100))
	}
	return []BreakdownSlice{
		{Label: "Investments", Value: investments, Percent: investPct, Color: slicePalette[0]},
		{Label: "Goals", Value: goals, Percent: goalsPct, Color: slicePalette[1]},
	}
}

// Snapshot returns a deep copy of the persisted state triple.
func (l *Ledger) Snapshot() domain.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

// Flush blocks until all in-flight snapshot writes finish. Used at shutdown
// and in tests; callers of the mutating operations never wait on persistence.
func (l *Ledger) Flush() {
	l.wg.Wait()
}

func (l *Ledger) totalInvestmentsLocked() float64 {
	sum := 0.0
	for _, inv := range l.portfolio {
		sum += inv.Value
	}
	return sum
}

func (l *Ledger) totalGoalsLocked() float64 {
	sum := 0.0
	for _, g := range l.goals {
		sum += g.CurrentAmount
	}
	return sum
}

func (l *Ledger) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Goals:           append([]domain.Goal(nil), l.goals...),
		Portfolio:       append([]domain.Investment(nil), l.portfolio...),
		PerformanceData: append([]domain.PerformancePoint(nil), l.performanceData...),
	}
}

func (l *Ledger) save(ctx context.Context, snap domain.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, SnapshotKey, blob)
}

func (l *Ledger) persistAsync(snap domain.Snapshot) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := l.save(context.Background(), snap); err != nil {
			log.Warn().Err(err).Str("key", SnapshotKey).Msg("Snapshot persist failed")
		}
	}()
}
