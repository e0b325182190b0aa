package activity

import (
	"context"
	"testing"

	"impulseshield-backend/internal/blobstore"
	"impulseshield-backend/internal/domain"
	"impulseshield-backend/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupActivityTest(t *testing.T) (*Service, *ledger.Ledger, *blobstore.MemoryStore) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	l := ledger.New(context.Background(), store)
	return New(context.Background(), l, store), l, store
}

func TestTransactions_Filter(t *testing.T) {
	s, _, _ := setupActivityTest(t)

	assert.Len(t, s.Transactions(""), 3)
	assert.Len(t, s.Transactions("all"), 3)
	assert.Len(t, s.Transactions("pending"), 1)
	assert.Len(t, s.Transactions("diverted"), 1)
	assert.Len(t, s.Transactions("spent"), 1)
}

func TestHandleNudge_InvestedDivertsToPrimaryGoal(t *testing.T) {
	s, l, _ := setupActivityTest(t)
	before, _ := l.Goal("g1")
	streakBefore := s.StreakDays()

	tx, err := s.HandleNudge(context.Background(), "t1", domain.NudgeInvested, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDiverted, tx.Status)

	after, _ := l.Goal("g1")
	assert.InDelta(t, before.CurrentAmount+87.50, after.CurrentAmount, 1e-9)
	assert.Equal(t, streakBefore+1, s.StreakDays())
	assert.InDelta(t, 87.50+6.25, s.TotalSaved(), 1e-9)
}

func TestHandleNudge_InvestedIntoChosenGoal(t *testing.T) {
	s, l, _ := setupActivityTest(t)
	before, _ := l.Goal("g3")

	_, err := s.HandleNudge(context.Background(), "t1", domain.NudgeInvested, "g3")
	require.NoError(t, err)

	after, _ := l.Goal("g3")
	assert.InDelta(t, before.CurrentAmount+87.50, after.CurrentAmount, 1e-9)
}

func TestHandleNudge_IgnoredMarksSpent(t *testing.T) {
	s, l, _ := setupActivityTest(t)
	goalsBefore := l.TotalGoalsValue()

	tx, err := s.HandleNudge(context.Background(), "t1", domain.NudgeIgnored, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSpent, tx.Status)
	assert.Equal(t, goalsBefore, l.TotalGoalsValue())
}

func TestHandleNudge_Errors(t *testing.T) {
	s, _, _ := setupActivityTest(t)

	_, err := s.HandleNudge(context.Background(), "missing", domain.NudgeInvested, "")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	// t2 is already diverted in the seed feed
	_, err = s.HandleNudge(context.Background(), "t2", domain.NudgeInvested, "")
	assert.ErrorIs(t, err, ErrTransactionSettled)

	_, err = s.HandleNudge(context.Background(), "t1", domain.NudgeInvested, "unknown-goal")
	assert.ErrorIs(t, err, ErrNoGoals)
}

func TestStreak_PersistsAcrossRestart(t *testing.T) {
	s, l, store := setupActivityTest(t)

	_, err := s.HandleNudge(context.Background(), "t1", domain.NudgeInvested, "")
	require.NoError(t, err)
	want := s.StreakDays()

	restarted := New(context.Background(), l, store)
	assert.Equal(t, want, restarted.StreakDays())
}

func TestRecommend_ByHorizonAndCategory(t *testing.T) {
	s, _, _ := setupActivityTest(t)

	tests := []struct {
		horizon  domain.TimeHorizon
		category domain.GoalCategory
		want     string
	}{
		{domain.HorizonShort, domain.CategoryOther, "SGOV"},
		{domain.HorizonMedium, domain.CategoryHome, "SCHD"},
		{domain.HorizonMedium, domain.CategoryTravel, "VTI"},
		{domain.HorizonLong, domain.CategoryRetirement, "VOO"},
		{domain.HorizonLong, domain.CategoryOther, "QQQ"},
		{"", domain.CategoryOther, "VTI"},
	}
	for _, tt := range tests {
		rec := s.Recommend(domain.Goal{TimeHorizon: tt.horizon}, tt.category)
		assert.Equal(t, tt.want, rec.Ticker)
		assert.NotEmpty(t, rec.Name)
		assert.NotEmpty(t, rec.RiskLevel)
	}
}
