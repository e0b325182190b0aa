package leaderboard

import (
	"sort"

	"impulseshield-backend/internal/application/activity"
	"impulseshield-backend/internal/domain"
	"impulseshield-backend/internal/ledger"
)

// Fixed community rows; the user's own row is rebuilt from live totals on
// every read.
var communityEntries = []domain.LeaderboardEntry{
	{ID: "u1", Username: "SavvySam", TotalDiverted: 2847.50, StreakDays: 45, Badges: []string{"streak-master", "first-1k"}},
	{ID: "u2", Username: "FrugalFiona", TotalDiverted: 2105.25, StreakDays: 31, Badges: []string{"first-1k"}},
	{ID: "u3", Username: "PennyWise", TotalDiverted: 1780.00, StreakDays: 28, Badges: []string{"first-1k"}},
	{ID: "u4", Username: "NoSpendNed", TotalDiverted: 945.75, StreakDays: 19, Badges: []string{"early-bird"}},
	{ID: "u5", Username: "BudgetBea", TotalDiverted: 512.30, StreakDays: 9, Badges: []string{}},
}

// UserStats is the "Your Stats" card above the board.
type UserStats struct {
	TotalDiverted float64 `json:"totalDiverted"`
	StreakDays    int     `json:"streakDays"`
}

type Service struct {
	Ledger   *ledger.Ledger
	Activity *activity.Service
}

// Stats returns the caller's headline figures. Total diverted mirrors the
// dashboard: the sum of all goal progress.
func (s *Service) Stats() UserStats {
	return UserStats{
		TotalDiverted: s.Ledger.TotalGoalsValue(),
		StreakDays:    s.Activity.StreakDays(),
	}
}

// TopSavers returns the board, ranked by total diverted, with the caller's
// row ("You") computed from live state.
func (s *Service) TopSavers() []domain.LeaderboardEntry {
	stats := s.Stats()
	entries := append([]domain.LeaderboardEntry(nil), communityEntries...)
	entries = append(entries, domain.LeaderboardEntry{
		ID:            "you",
		Username:      "You",
		TotalDiverted: stats.TotalDiverted,
		StreakDays:    stats.StreakDays,
		Badges:        []string{"getting-started"},
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalDiverted > entries[j].TotalDiverted
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
