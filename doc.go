// Package tracker implements the accounting core of a crypto portfolio
// tracker: a persistent ledger of buy, sell and transfer transactions, the
// pure calculations that derive holdings, cost basis and profit from it, and
// the one-time migration of quantity-only portfolios from the previous
// generation of the app.
//
// The Store is the single source of truth. All state lives in memory and is
// snapshotted to a pluggable Storage after each mutation; persistence
// failures are logged but never fail the mutation. Market prices are not
// stored, they are fetched by callers (see the coingecko package) and passed
// to the calculation functions.
package tracker
