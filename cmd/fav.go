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

type favCmd struct{}

func (*favCmd) Name() string     { return "fav" }
func (*favCmd) Synopsis() string { return "add coins to the favorites" }
func (*favCmd) Usage() string {
	return `cpt fav <coin-id>...

  Marks the given coins as favorites. Adding a favorite twice is harmless.
`
}
func (c *favCmd) SetFlags(f *flag.FlagSet) {}

func (c *favCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one coin id is required")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		store.AddFavorite(strings.ToLower(id))
	}
	fmt.Printf("Favorites: %s\n", strings.Join(store.Favorites(), ", "))
	return subcommands.ExitSuccess
}

type unfavCmd struct{}

func (*unfavCmd) Name() string     { return "unfav" }
func (*unfavCmd) Synopsis() string { return "remove coins from the favorites" }
func (*unfavCmd) Usage() string {
	return `cpt unfav <coin-id>...

  Removes the given coins from the favorites.
`
}
func (c *unfavCmd) SetFlags(f *flag.FlagSet) {}

func (c *unfavCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one coin id is required")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		store.RemoveFavorite(strings.ToLower(id))
	}
	fmt.Printf("Favorites: %s\n", strings.Join(store.Favorites(), ", "))
	return subcommands.ExitSuccess
}

type favsCmd struct {
	prices bool
}

func (*favsCmd) Name() string     { return "favs" }
func (*favsCmd) Synopsis() string { return "list the favorite coins" }
func (*favsCmd) Usage() string {
	return `cpt favs [-prices]

  Lists the favorite coins, optionally with their current market data.
`
}

func (p *favsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.prices, "prices", false, "Fetch and show current market data.")
}

func (p *favsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	favorites := store.Favorites()
	if len(favorites) == 0 {
		fmt.Println("No favorites yet. Use 'cpt fav <coin-id>' to add some.")
		return subcommands.ExitSuccess
	}

	if !p.prices {
		for _, id := range favorites {
			fmt.Println(id)
		}
		return subcommands.ExitSuccess
	}

	coins, err := coingecko.New().CoinsByIDs(favorites)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CoinsMarkdown(coins, store.IsFavorite))
	return subcommands.ExitSuccess
}
