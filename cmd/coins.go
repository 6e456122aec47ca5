package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/triantafd/crypto-portfolio-tracker/coingecko"
	"github.com/triantafd/crypto-portfolio-tracker/renderer"
)

type coinsCmd struct {
	page    int
	perPage int
}

func (*coinsCmd) Name() string     { return "coins" }
func (*coinsCmd) Synopsis() string { return "list the market by market cap" }
func (*coinsCmd) Usage() string {
	return `cpt coins [-page <n>] [-per-page <n>]

  Lists coins ordered by market cap descending, with current prices.
`
}

func (p *coinsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.page, "page", 1, "Page to fetch.")
	f.IntVar(&p.perPage, "per-page", 50, "Coins per page.")
}

func (p *coinsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	coins, err := coingecko.New().Markets(p.page, p.perPage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CoinsMarkdown(coins, store.IsFavorite))
	return subcommands.ExitSuccess
}

type coinCmd struct{}

func (*coinCmd) Name() string     { return "coin" }
func (*coinCmd) Synopsis() string { return "show the detail of one coin" }
func (*coinCmd) Usage() string {
	return `cpt coin <coin-id>

  Shows the current market detail of one coin.
`
}
func (c *coinCmd) SetFlags(f *flag.FlagSet) {}

func (c *coinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one coin id is required")
		return subcommands.ExitUsageError
	}

	detail, err := coingecko.New().CoinDetails(strings.ToLower(f.Arg(0)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CoinDetailMarkdown(detail))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	days int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the price history of a coin" }
func (*historyCmd) Usage() string {
	return `cpt history [-days <n>] <coin-id>

  Shows the price history of a coin over the last days.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.days, "days", 7, "Number of days of history.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one coin id is required")
		return subcommands.ExitUsageError
	}

	id := strings.ToLower(f.Arg(0))
	points, err := coingecko.New().History(id, p.days)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(id, points))
	return subcommands.ExitSuccess
}
