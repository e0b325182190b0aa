package learn

import "impulseshield-backend/internal/domain"

var lessons = []domain.Lesson{
	{
		ID: "1", Title: "What is Investing?", Description: "Learn the basics of growing your wealth",
		Category: "basics", Icon: "dollar",
		Content: []string{
			"Investing is putting your money to work to earn more money over time.",
			"Unlike saving, investing involves some risk but offers potential for higher returns.",
			"The key is starting early to benefit from compound growth.",
			"Even small, regular investments can grow significantly over decades.",
		},
	},
	{
		ID: "2", Title: "Understanding ETFs", Description: "What are ETFs and why they matter",
		Category: "etfs", Icon: "pie",
		Content: []string{
			"ETF stands for Exchange-Traded Fund.",
			"It's like buying a basket of many different stocks in one purchase.",
			"ETFs provide instant diversification, reducing your risk.",
			"They typically have lower fees than actively managed funds.",
			"Popular ETFs track the S&P 500, total market, or specific sectors.",
		},
	},
	{
		ID: "3", Title: "Risk vs. Reward", Description: "Understanding investment risk",
		Category: "risk", Icon: "shield",
		Content: []string{
			"Higher potential returns usually come with higher risk.",
			"Short-term goals need safer investments (bonds, treasury funds).",
			"Long-term goals can handle more risk (stock index funds).",
			"Diversification spreads risk across many investments.",
			"Never invest money you'll need in the next 1-3 years.",
		},
	},
	{
		ID: "4", Title: "Time Horizons Matter", Description: "Matching investments to your timeline",
		Category: "basics", Icon: "trending",
		Content: []string{
			"Short-term (1-3 years): Use safe, liquid investments like SGOV.",
			"Medium-term (3-10 years): Balanced mix like VTI or SCHD.",
			"Long-term (10+ years): Growth-focused like VOO or QQQ.",
			"The longer your timeline, the more market volatility you can handle.",
		},
	},
	{
		ID: "5", Title: "The Power of Consistency", Description: "Why regular investing wins",
		Category: "basics", Icon: "zap",
		Content: []string{
			"Investing $50/week beats trying to time the market.",
			"Dollar-cost averaging means you buy more shares when prices are low.",
			"Consistency builds wealth through compound returns.",
			"Small, regular investments add up faster than you think.",
			"The best time to start was yesterday. The second best time is today.",
		},
	},
	{
		ID: "6", Title: "Popular ETF Picks", Description: "Common ETFs for different goals",
		Category: "etfs", Icon: "pie",
		Content: []string{
			"SGOV: Ultra-safe short-term treasuries for near-term goals.",
			"VTI: Total US stock market - maximum diversification.",
			"VOO: S&P 500 - proven long-term growth.",
			"SCHD: Dividend-focused for income + growth.",
			"QQQ: Tech-heavy Nasdaq for aggressive growth.",
		},
	},
}

// Lessons returns the catalog, filtered by category unless the filter is
// empty or "all".
func Lessons(category string) []domain.Lesson {
	if category == "" || category == "all" {
		return append([]domain.Lesson(nil), lessons...)
	}
	out := make([]domain.Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}
