package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"time"
)

// Test fixtures shared across the package tests.

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func buy(coinID string, amount, fiat float64, day string) Transaction {
	return Transaction{
		ID:           newTransactionID(),
		CoinID:       coinID,
		Type:         TxBuy,
		AmountCrypto: Q(amount),
		AmountFiat:   USD(fiat),
		Date:         date(day),
	}
}

func sell(coinID string, amount, fiat float64, day string) Transaction {
	tx := buy(coinID, amount, fiat, day)
	tx.Type = TxSell
	return tx
}

func transfer(coinID string, amount float64, day string) Transaction {
	tx := buy(coinID, amount, 0, day)
	tx.Type = TxTransfer
	return tx
}

func withFee(tx Transaction, fee float64) Transaction {
	tx.Fee = USD(fee)
	return tx
}

// newTestStore returns an empty store over in-memory storage.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(NewMemoryStorage())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return s
}

// brokenStorage reports no stored record and fails every write, to exercise
// the persistence error path.
type brokenStorage struct{}

var errBroken = errors.New("storage is broken")

func (brokenStorage) Get(key string) ([]byte, error) {
	return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
}
func (brokenStorage) Set(key string, value []byte) error { return errBroken }
