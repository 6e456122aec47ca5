// Package cmd implements the CLI application to manage a crypto portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/triantafd/crypto-portfolio-tracker"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&favCmd{}, "favorites")
	c.Register(&unfavCmd{}, "favorites")
	c.Register(&favsCmd{}, "favorites")

	c.Register(&coinsCmd{}, "market")
	c.Register(&coinCmd{}, "market")
	c.Register(&historyCmd{}, "market")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storagePath = flag.String("storage-path", envOr("CPT_STORAGE_PATH", ".cpt"), "Path to the portfolio storage folder")
var dbFile = flag.String("db", os.Getenv("CPT_DB"), "Path to a SQLite database to use instead of the storage folder")

// envOr returns the environment variable value, or the fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openStore opens the portfolio store from the configured storage and runs
// the one-time legacy migration so every command sees transactions only.
func openStore() (*tracker.Store, error) {
	var storage tracker.Storage
	if *dbFile != "" {
		var err error
		storage, err = tracker.OpenSQLiteStorage(*dbFile)
		if err != nil {
			return nil, fmt.Errorf("could not open database: %w", err)
		}
	} else {
		storage = tracker.NewFileStorage(*storagePath)
	}

	store, err := tracker.NewStore(storage)
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio: %w", err)
	}
	store.MigrateLegacyPortfolio()
	return store, nil
}
