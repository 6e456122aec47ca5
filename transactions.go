package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the kind of a portfolio event.
type TxType string

// The closed set of transaction types the ledger records.
const (
	TxBuy      TxType = "buy"
	TxSell     TxType = "sell"
	TxTransfer TxType = "transfer"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case TxBuy, TxSell, TxTransfer:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is an immutable record of one portfolio event.
//
// CoinID is the lowercase identifier the market-data API uses for the asset
// (e.g. "bitcoin"). AmountCrypto is the coin quantity moved by the event and
// AmountFiat the fiat value associated with it; AmountFiat may be zero, for
// transfers or for migrated records whose historical price is unknown.
type Transaction struct {
	ID           string    // unique, generated at creation, stable for the transaction's lifetime.
	CoinID       string    //
	Type         TxType    //
	AmountCrypto Quantity  //
	AmountFiat   Money     //
	Date         time.Time // the instant the event occurred; need not be unique.
	Fee          Money     // optional fiat cost incurred by the transaction.
	Notes        string    // optional free-text annotation.
}

// newTransactionID generates a fresh unique transaction id.
func newTransactionID() string { return uuid.NewString() }

// TransactionDraft holds the caller-supplied fields of a new transaction.
// The store assigns the id; everything else is recorded as given, the store
// performs no validation.
type TransactionDraft struct {
	CoinID       string
	Type         TxType
	AmountCrypto Quantity
	AmountFiat   Money
	Date         time.Time
	Fee          Money
	Notes        string
}

// TransactionUpdate carries a partial set of fields to merge into an existing
// transaction. Nil fields are left untouched.
type TransactionUpdate struct {
	CoinID       *string
	Type         *TxType
	AmountCrypto *Quantity
	AmountFiat   *Money
	Date         *time.Time
	Fee          *Money
	Notes        *string
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.CoinID == o.CoinID &&
		t.Type == o.Type &&
		t.AmountCrypto.Equal(o.AmountCrypto) &&
		t.AmountFiat.Equal(o.AmountFiat) &&
		t.Date.Equal(o.Date) &&
		t.Fee.Equal(o.Fee) &&
		t.Notes == o.Notes
}

// merge returns a copy of the transaction with the update's non-nil fields applied.
func (t Transaction) merge(u TransactionUpdate) Transaction {
	if u.CoinID != nil {
		t.CoinID = *u.CoinID
	}
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.AmountCrypto != nil {
		t.AmountCrypto = *u.AmountCrypto
	}
	if u.AmountFiat != nil {
		t.AmountFiat = *u.AmountFiat
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Fee != nil {
		t.Fee = *u.Fee
	}
	if u.Notes != nil {
		t.Notes = *u.Notes
	}
	return t
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
//
// The field layout is the on-disk contract of the state record: amounts are
// bare numbers, the date an ISO-8601 instant, fee and notes omitted when empty.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("coinId", t.CoinID)
	w.Append("type", t.Type)
	w.Append("amountCrypto", t.AmountCrypto)
	w.Append("amountFiat", t.AmountFiat)
	w.Append("date", t.Date.UTC().Format(time.RFC3339Nano))
	if !t.Fee.IsZero() {
		w.Append("fee", t.Fee)
	}
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string          `json:"id"`
		CoinID       string          `json:"coinId"`
		Type         TxType          `json:"type"`
		AmountCrypto Quantity        `json:"amountCrypto"`
		AmountFiat   decimal.Decimal `json:"amountFiat"`
		Date         time.Time       `json:"date"`
		Fee          decimal.Decimal `json:"fee"`
		Notes        string          `json:"notes"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.ID = temp.ID
	t.CoinID = temp.CoinID
	t.Type = temp.Type
	t.AmountCrypto = temp.AmountCrypto
	t.AmountFiat = M(temp.AmountFiat, Fiat)
	t.Date = temp.Date
	t.Fee = M(temp.Fee, Fiat)
	t.Notes = temp.Notes
	return nil
}
