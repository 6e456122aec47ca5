package renderer

import (
	"fmt"
	"strings"

	"github.com/triantafd/crypto-portfolio-tracker"
)

// SummaryMarkdown renders the portfolio summary report.
func SummaryMarkdown(report tracker.SummaryReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", report.Date.Format("2006-01-02"))

	if len(report.Holdings) == 0 {
		fmt.Fprintln(&b, "The portfolio is empty.")
		return b.String()
	}

	fmt.Fprint(&b, "## Holdings\n\n")
	fmt.Fprintln(&b, "| Coin | Holdings | Price | Value | Cost | All Time | 24h |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, h := range report.Holdings {
		name := h.Name
		if name == "" {
			name = h.CoinID
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f | %s | %s | %s (%s) | %s (%s) |\n",
			name,
			h.Holdings,
			h.CurrentPrice,
			h.Value,
			h.CostBasis,
			h.AllTime.Amount.SignedString(),
			h.AllTime.Percent.SignedString(),
			h.Day.Amount.SignedString(),
			h.Day.Percent.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | **%s** | **%s** | **%s** (**%s**) | **%s** (**%s**) |\n",
		"Total",
		report.TotalValue,
		report.TotalCost,
		report.AllTime.Amount.SignedString(),
		report.AllTime.Percent.SignedString(),
		report.Day.Amount.SignedString(),
		report.Day.Percent.SignedString(),
	)

	return b.String()
}

// HoldingMarkdown renders the detailed report of one position.
func HoldingMarkdown(h tracker.HoldingReport) string {
	var b strings.Builder

	name := h.Name
	if name == "" {
		name = h.CoinID
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	if h.Symbol != "" {
		fmt.Fprintf(&b, "Symbol: %s\n\n", strings.ToUpper(h.Symbol))
	}

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Holdings | %s |\n", h.Holdings)
	fmt.Fprintf(&b, "| Current Price | %.2f |\n", h.CurrentPrice)
	fmt.Fprintf(&b, "| Value | %s |\n", h.Value)
	fmt.Fprintf(&b, "| Cost Basis | %s |\n", h.CostBasis)
	fmt.Fprintf(&b, "| Avg Buy Price | %s |\n", h.AvgBuyPrice)
	fmt.Fprintf(&b, "| All Time Profit | %s (%s) |\n", h.AllTime.Amount.SignedString(), h.AllTime.Percent.SignedString())
	fmt.Fprintf(&b, "| 24h Profit | %s (%s) |\n", h.Day.Amount.SignedString(), h.Day.Percent.SignedString())

	return b.String()
}
