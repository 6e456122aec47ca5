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
	"github.com/triantafd/crypto-portfolio-tracker/renderer"
)

// recordFlags are the flags shared by the commands that record a transaction.
type recordFlags struct {
	coin   string
	amount float64
	fiat   float64
	fee    float64
	date   string
	notes  string
}

func (p *recordFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&p.coin, "coin", "", "Coin id as known by the market-data API (e.g. bitcoin).")
	f.Float64Var(&p.amount, "amount", 0, "Coin quantity.")
	f.Float64Var(&p.fiat, "fiat", 0, "Fiat amount of the transaction, in USD.")
	f.Float64Var(&p.fee, "fee", 0, "Fiat fee of the transaction, in USD.")
	f.StringVar(&p.date, "d", "", "Date of the transaction (YYYY-MM-DD or RFC3339). Defaults to now.")
	f.StringVar(&p.notes, "n", "", "Free-text note.")
}

// draft validates the flags and builds the transaction draft. The store
// records whatever it is given, so validation happens here.
func (p *recordFlags) draft(txType tracker.TxType) (tracker.TransactionDraft, error) {
	if p.coin == "" {
		return tracker.TransactionDraft{}, fmt.Errorf("-coin is required")
	}
	if p.amount <= 0 {
		return tracker.TransactionDraft{}, fmt.Errorf("-amount must be positive")
	}
	if p.fiat < 0 {
		return tracker.TransactionDraft{}, fmt.Errorf("-fiat cannot be negative")
	}
	if p.fee < 0 {
		return tracker.TransactionDraft{}, fmt.Errorf("-fee cannot be negative")
	}
	date, err := parseDate(p.date)
	if err != nil {
		return tracker.TransactionDraft{}, err
	}

	return tracker.TransactionDraft{
		CoinID:       strings.ToLower(p.coin),
		Type:         txType,
		AmountCrypto: tracker.Q(p.amount),
		AmountFiat:   tracker.USD(p.fiat),
		Date:         date,
		Fee:          tracker.USD(p.fee),
		Notes:        p.notes,
	}, nil
}

// parseDate parses a transaction date flag, defaulting to now.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

// record runs the shared tail of the recording commands.
func (p *recordFlags) record(txType tracker.TxType) subcommands.ExitStatus {
	draft, err := p.draft(txType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := store.AddTransaction(draft)
	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

type buyCmd struct{ recordFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy transaction" }
func (*buyCmd) Usage() string {
	return `cpt buy -coin <id> -amount <qty> -fiat <usd> [-fee <usd>] [-d <date>] [-n <note>]

  Records the purchase of a coin quantity for a fiat amount.
`
}
func (p *buyCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }
func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.record(tracker.TxBuy)
}

type sellCmd struct{ recordFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell transaction" }
func (*sellCmd) Usage() string {
	return `cpt sell -coin <id> -amount <qty> -fiat <usd> [-fee <usd>] [-d <date>] [-n <note>]

  Records the sale of a coin quantity for a fiat amount.
`
}
func (p *sellCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }
func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.record(tracker.TxSell)
}

type transferCmd struct{ recordFlags }

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record an incoming transfer" }
func (*transferCmd) Usage() string {
	return `cpt transfer -coin <id> -amount <qty> [-d <date>] [-n <note>]

  Records a coin quantity received from outside (airdrop, gift, another
  wallet). Transfers increase holdings but not the cost basis.
`
}
func (p *transferCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }
func (p *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.record(tracker.TxTransfer)
}
