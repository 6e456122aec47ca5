package renderer

import (
	"fmt"
	"strings"

	"github.com/triantafd/crypto-portfolio-tracker/coingecko"
)

// CoinsMarkdown renders a market listing as a markdown table. Favorites are
// marked with a star.
func CoinsMarkdown(coins []coingecko.Coin, isFavorite func(id string) bool) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Market\n\n")
	fmt.Fprintln(&b, "| Rank | Coin | Symbol | Price | 24h | Fav |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|:---:|")
	for _, c := range coins {
		fav := ""
		if isFavorite != nil && isFavorite(c.ID) {
			fav = "★"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %.2f | %+.2f%% | %s |\n",
			c.MarketCapRank,
			c.Name,
			strings.ToUpper(c.Symbol),
			c.CurrentPrice,
			c.PriceChange24h,
			fav,
		)
	}
	return b.String()
}

// CoinDetailMarkdown renders the detail view of one coin.
func CoinDetailMarkdown(d coingecko.CoinDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", d.Name, strings.ToUpper(d.Symbol))
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Price | %.2f |\n", d.CurrentPrice)
	fmt.Fprintf(&b, "| Market Cap | %.0f |\n", d.MarketCap)
	fmt.Fprintf(&b, "| 24h High | %.2f |\n", d.High24h)
	fmt.Fprintf(&b, "| 24h Low | %.2f |\n", d.Low24h)
	fmt.Fprintf(&b, "| 24h Change | %+.2f%% |\n", d.PriceChange24h)
	return b.String()
}

// HistoryMarkdown renders a price history as a markdown table.
func HistoryMarkdown(id string, points []coingecko.PricePoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Price History of %s\n\n", id)
	if len(points) == 0 {
		fmt.Fprintln(&b, "No price history available.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Price |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, p := range points {
		fmt.Fprintf(&b, "| %s | %.2f |\n", p.Time.Format("2006-01-02 15:04"), p.Price)
	}
	return b.String()
}
