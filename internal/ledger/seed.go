package ledger

import "impulseshield-backend/internal/domain"

// seedSnapshot is the dataset adopted when the blob store has no usable
// snapshot (first launch or wiped storage).
func seedSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Portfolio: []domain.Investment{
			{Name: "Total Market ETF (VTI)", Ticker: "VTI", Value: 15430.50, GainPercent: 1.25, IsPositive: true, GoalID: "g1"},
			{Name: "S&P 500 Fund (VOO)", Ticker: "VOO", Value: 24500.80, GainPercent: -0.45, IsPositive: false, GoalID: "g1"},
			{Name: "International Bonds (BNDX)", Ticker: "BNDX", Value: 5000.00, GainPercent: 0.02, IsPositive: true, GoalID: "g2"},
			{Name: "Technology Sector (QQQ)", Ticker: "QQQ", Value: 12100.20, GainPercent: 2.15, IsPositive: true, GoalID: "g3"},
		},
		Goals: []domain.Goal{
			{ID: "g1", Title: "New Home Down Payment", Description: "Saving for a bigger place.", ImageURL: "https://picsum.photos/id/10/800/600", TargetAmount: 50000, CurrentAmount: 35000, TimeHorizon: domain.HorizonMedium},
			{ID: "g2", Title: "Dream Car Fund", Description: "Putting aside money monthly.", ImageURL: "https://picsum.photos/id/19/800/600", TargetAmount: 15000, CurrentAmount: 8000, TimeHorizon: domain.HorizonShort},
			{ID: "g3", Title: "Retirement Freedom", Description: "Long-term investment.", ImageURL: "https://picsum.photos/id/21/800/600", TargetAmount: 1000000, CurrentAmount: 450000, TimeHorizon: domain.HorizonLong},
		},
		PerformanceData: []domain.PerformancePoint{
			{Date: "Nov 1", PortfolioValue: 43500},
			{Date: "Nov 5", PortfolioValue: 44000},
			{Date: "Nov 10", PortfolioValue: 44500},
			{Date: "Nov 15", PortfolioValue: 45000},
			{Date: "Nov 20", PortfolioValue: 45500},
			{Date: "Nov 25", PortfolioValue: 46000},
		},
	}
}
