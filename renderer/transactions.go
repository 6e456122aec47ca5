package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/triantafd/crypto-portfolio-tracker"
)

// Transaction renders a one-line human description of a transaction.
func Transaction(tx tracker.Transaction) string {
	switch tx.Type {
	case tracker.TxBuy:
		return fmt.Sprintf("Bought %s of %s for %s", tx.AmountCrypto, tx.CoinID, tx.AmountFiat)
	case tracker.TxSell:
		return fmt.Sprintf("Sold %s of %s for %s", tx.AmountCrypto, tx.CoinID, tx.AmountFiat)
	case tracker.TxTransfer:
		return fmt.Sprintf("Transferred in %s of %s", tx.AmountCrypto, tx.CoinID)
	default:
		return string(tx.Type)
	}
}

// TransactionsMarkdown renders the transaction list as a markdown table, in
// the order given (the ledger keeps them most recent first).
func TransactionsMarkdown(txs []tracker.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Date | Type | Coin | Amount | Fiat | Fee | Notes |")
		fmt.Fprintln(w, "|:---|:---|:---|---:|---:|---:|:---|")
		for _, tx := range txs {
			fee := "-"
			if !tx.Fee.IsZero() {
				fee = tx.Fee.String()
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
				tx.Date.Format("2006-01-02"),
				tx.Type,
				tx.CoinID,
				tx.AmountCrypto,
				tx.AmountFiat,
				fee,
				tx.Notes,
			)
		}
		return len(txs) > 0
	})
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
	}

	return b.String()
}
