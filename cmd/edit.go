package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/triantafd/crypto-portfolio-tracker"
)

type editCmd struct {
	id string
	recordFlags
	txType string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `cpt edit -id <transaction-id> [-coin <id>] [-type <buy|sell|transfer>] [-amount <qty>] [-fiat <usd>] [-fee <usd>] [-d <date>] [-n <note>]

  Updates the given fields of a transaction; omitted flags are left unchanged.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the transaction to edit.")
	f.StringVar(&p.txType, "type", "", "New transaction type (buy, sell or transfer).")
	p.setFlags(f)
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set become part of the update.
	var update tracker.TransactionUpdate
	var badFlag error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "coin":
			coin := strings.ToLower(p.coin)
			update.CoinID = &coin
		case "type":
			txType, err := tracker.ParseTxType(p.txType)
			if err != nil {
				badFlag = err
				return
			}
			update.Type = &txType
		case "amount":
			amount := tracker.Q(p.amount)
			update.AmountCrypto = &amount
		case "fiat":
			fiat := tracker.USD(p.fiat)
			update.AmountFiat = &fiat
		case "fee":
			fee := tracker.USD(p.fee)
			update.Fee = &fee
		case "d":
			date, err := parseDate(p.date)
			if err != nil {
				badFlag = err
				return
			}
			update.Date = &date
		case "n":
			update.Notes = &p.notes
		}
	})
	if badFlag != nil {
		fmt.Fprintln(os.Stderr, "Error:", badFlag)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.UpdateTransaction(p.id, update)
	fmt.Printf("Updated transaction %s\n", p.id)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `cpt delete -id <transaction-id>

  Removes the transaction from the ledger.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the transaction to delete.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store.DeleteTransaction(p.id)
	fmt.Printf("Deleted transaction %s\n", p.id)
	return subcommands.ExitSuccess
}
