package markets

import (
	"errors"
	"fmt"
	"strings"

	"impulseshield-backend/internal/domain"
)

var ErrUnknownTicker = errors.New("Ticker not found")

// Static quote list backing stock search. Prices are simulated; there is no
// live market feed in this app.
var stocks = []domain.Stock{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 178.23, Change: 1.25},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Price: 334.56, Change: 0.89},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 136.78, Change: -0.45},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 145.67, Change: 2.34},
	{Symbol: "NVDA", Name: "NVIDIA Corp.", Price: 467.89, Change: 4.56},
	{Symbol: "TSLA", Name: "Tesla Inc.", Price: 256.78, Change: -1.23},
	{Symbol: "META", Name: "Meta Platforms", Price: 312.45, Change: 0.67},
	{Symbol: "BRK.B", Name: "Berkshire Hathaway", Price: 356.78, Change: 0.12},
	{Symbol: "LLY", Name: "Eli Lilly & Co.", Price: 567.89, Change: 1.45},
	{Symbol: "V", Name: "Visa Inc.", Price: 245.67, Change: 0.56},
}

// Search filters the quote list by symbol or name, case-insensitive. An
// empty query returns the full list.
func Search(query string) []domain.Stock {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]domain.Stock(nil), stocks...)
	}
	out := make([]domain.Stock, 0, len(stocks))
	for _, s := range stocks {
		if strings.Contains(strings.ToLower(s.Symbol), query) || strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out
}

// Get returns the detail view for one ticker.
func Get(ticker string) (domain.StockDetail, error) {
	upper := strings.ToUpper(strings.TrimSpace(ticker))
	for _, s := range stocks {
		if s.Symbol == upper {
			return domain.StockDetail{
				Stock:       s,
				Description: fmt.Sprintf("This is a simulated description for %s. It is a leading technology company known for innovation and solid financial performance. Analysts recently upgraded the stock due to strong earnings growth.", upper),
			}, nil
		}
	}
	return domain.StockDetail{}, ErrUnknownTicker
}
