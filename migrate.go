package tracker

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// migratedNote marks transactions synthesized from the legacy portfolio.
const migratedNote = "Migrated from old portfolio"

// MigrateLegacyPortfolio converts the legacy quantity-only portfolio into
// transactions, once. Each legacy position with a positive amount becomes a
// buy of that quantity with a zero fiat amount: the historical purchase price
// is unknown, so the cost basis of migrated positions starts at zero and
// profit percentages read zero until real purchases are recorded.
//
// The migration runs at most once per stored portfolio. Subsequent calls are
// a no-op, and the legacy map is kept in the state record so the previous
// generation of the app can still read it.
func (s *Store) MigrateLegacyPortfolio() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.migrated {
		return
	}

	now := time.Now().UTC()
	ids := make([]string, 0, len(s.legacy))
	for id := range s.legacy {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		position := s.legacy[id]
		if !position.Amount.IsPositive() {
			continue
		}
		s.transactions = append(s.transactions, Transaction{
			ID:           newTransactionID(),
			CoinID:       strings.ToLower(id),
			Type:         TxBuy,
			AmountCrypto: position.Amount,
			AmountFiat:   USD(decimal.Zero),
			Date:         now,
			Fee:          USD(decimal.Zero),
			Notes:        migratedNote,
		})
	}

	s.migrated = true
	s.sortTransactions()
	s.save()
}
