package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/triantafd/crypto-portfolio-tracker"
	"github.com/triantafd/crypto-portfolio-tracker/coingecko"
	"github.com/triantafd/crypto-portfolio-tracker/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `cpt summary

  Values every position at current market prices and shows holdings, cost
  basis, all-time and 24h profit per coin and for the whole portfolio.
`
}
func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := buildSummary(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}

// buildSummary fetches market data for every coin in the ledger and values
// the whole portfolio.
func buildSummary(store *tracker.Store) (tracker.SummaryReport, error) {
	ids := store.AllCoinIDs()
	coins, err := coingecko.New().CoinsByIDs(ids)
	if err != nil {
		return tracker.SummaryReport{}, fmt.Errorf("could not fetch market data: %w", err)
	}
	byID := make(map[string]coingecko.Coin, len(coins))
	for _, c := range coins {
		byID[c.ID] = c
	}

	transactions := store.Transactions()
	var holdings []tracker.HoldingReport
	for _, id := range ids {
		coin, ok := byID[id]
		// Coins unknown to the market API are still reported, unpriced.
		var priceDayAgo float64
		if ok {
			priceDayAgo, _ = coingecko.PriceDayAgo(coin.CurrentPrice, coin.PriceChange24h)
		}
		report := tracker.NewHoldingReport(transactions, id, coin.CurrentPrice, priceDayAgo)
		report.Name = coin.Name
		report.Symbol = coin.Symbol
		holdings = append(holdings, report)
	}

	return tracker.NewSummaryReport(time.Now(), holdings), nil
}

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "show the detail of one position" }
func (*holdingCmd) Usage() string {
	return `cpt holding <coin-id>

  Shows holdings, cost basis, average buy price and profit of one coin.
`
}
func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one coin id is required")
		return subcommands.ExitUsageError
	}
	id := strings.ToLower(f.Arg(0))

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	coins, err := coingecko.New().CoinsByIDs([]string{id})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var coin coingecko.Coin
	var priceDayAgo float64
	if len(coins) > 0 {
		coin = coins[0]
		priceDayAgo, _ = coingecko.PriceDayAgo(coin.CurrentPrice, coin.PriceChange24h)
	}

	report := tracker.NewHoldingReport(store.Transactions(), id, coin.CurrentPrice, priceDayAgo)
	report.Name = coin.Name
	report.Symbol = coin.Symbol
	printMarkdown(renderer.HoldingMarkdown(report))
	return subcommands.ExitSuccess
}
