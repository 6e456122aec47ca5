package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"
	"sort"
	"sync"
)

// Store owns the transaction ledger and the favorite coin ids for the process
// lifetime. It is the single source of truth and the sole write path for
// portfolio data: mutations update the in-memory state synchronously, then
// persist a snapshot through the injected Storage.
//
// Transactions are always kept in date-descending order (most recent first).
//
// The store performs no validation of transaction fields; callers are
// expected to validate before recording. Unknown ids on update or delete are
// a silent no-op, absence of a record is not exceptional.
type Store struct {
	mu      sync.RWMutex
	storage Storage

	favorites    []string
	transactions []Transaction // date-descending
	legacy       map[string]LegacyPosition
	migrated     bool
}

// NewStore loads the persisted state record from storage and returns a ready
// store. A missing record yields an empty store; a corrupt one is an error.
func NewStore(storage Storage) (*Store, error) {
	s := &Store{
		storage: storage,
		legacy:  make(map[string]LegacyPosition),
	}

	data, err := storage.Get(StateKey)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read state record: %w", err)
	}

	st, err := decodeState(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode state record: %w", err)
	}
	s.favorites = st.Favorites
	s.transactions = st.Transactions
	s.legacy = st.Portfolio
	s.migrated = st.Migrated
	s.sortTransactions()
	return s, nil
}

// AddFavorite inserts the coin id into the favorites if absent. Adding an id
// twice is a no-op, not an error.
func (s *Store) AddFavorite(coinID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.favorites, coinID) {
		return
	}
	s.favorites = append(s.favorites, coinID)
	s.save()
}

// RemoveFavorite removes the coin id from the favorites; no-op if absent.
func (s *Store) RemoveFavorite(coinID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.favorites)
	s.favorites = slices.DeleteFunc(s.favorites, func(id string) bool { return id == coinID })
	if len(s.favorites) != before {
		s.save()
	}
}

// IsFavorite reports whether the coin id is currently a favorite.
func (s *Store) IsFavorite(coinID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favorites, coinID)
}

// Favorites returns the favorite coin ids in insertion order.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// AddTransaction records a new transaction built from the draft, with a
// freshly generated unique id, and re-sorts the ledger by date descending.
// It returns the recorded transaction.
func (s *Store) AddTransaction(draft TransactionDraft) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := Transaction{
		ID:           newTransactionID(),
		CoinID:       draft.CoinID,
		Type:         draft.Type,
		AmountCrypto: draft.AmountCrypto,
		AmountFiat:   draft.AmountFiat,
		Date:         draft.Date,
		Fee:          draft.Fee,
		Notes:        draft.Notes,
	}
	s.transactions = append(s.transactions, tx)
	s.sortTransactions()
	s.save()
	return tx
}

// UpdateTransaction merges the update into the transaction matching id, then
// re-sorts the ledger. Unknown ids are a silent no-op.
func (s *Store) UpdateTransaction(id string, update TransactionUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.transactions {
		if tx.ID == id {
			s.transactions[i] = tx.merge(update)
			s.sortTransactions()
			s.save()
			return
		}
	}
}

// DeleteTransaction removes the transaction matching id; no-op if not found.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.transactions)
	s.transactions = slices.DeleteFunc(s.transactions, func(tx Transaction) bool { return tx.ID == id })
	if len(s.transactions) != before {
		s.save()
	}
}

// Transactions returns a copy of the ledger in its current (date-descending) order.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transactions)
}

// TransactionsByCoin returns the transactions of one coin, in ledger order.
func (s *Store) TransactionsByCoin(coinID string) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var txs []Transaction
	for _, tx := range s.transactions {
		if tx.CoinID == coinID {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Holdings is a convenience query over the store's own ledger; it is the same
// formula as the standalone Holdings function.
func (s *Store) Holdings(coinID string) Quantity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Holdings(s.transactions, coinID)
}

// CostBasis is a convenience query over the store's own ledger.
func (s *Store) CostBasis(coinID string) Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CostBasis(s.transactions, coinID)
}

// AvgBuyPrice is a convenience query over the store's own ledger.
func (s *Store) AvgBuyPrice(coinID string) Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AvgBuyPrice(s.transactions, coinID)
}

// AllCoinIDs returns the distinct coin ids present across all transactions.
func (s *Store) AllCoinIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CoinIDs(s.transactions)
}

// Migrated reports whether the one-time legacy migration has run.
func (s *Store) Migrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.migrated
}

// sortTransactions orders the ledger by date descending. The sort is stable,
// transactions on the same instant keep their relative order.
// Callers must hold the write lock.
func (s *Store) sortTransactions() {
	sort.SliceStable(s.transactions, func(i, j int) bool {
		return s.transactions[i].Date.After(s.transactions[j].Date)
	})
}

// save persists the current snapshot. A storage failure is logged and
// swallowed: the in-memory ledger remains authoritative for this session.
// Callers must hold the write lock.
func (s *Store) save() {
	data, err := encodeState(state{
		Favorites:    s.favorites,
		Transactions: s.transactions,
		Portfolio:    s.legacy,
		Migrated:     s.migrated,
	})
	if err != nil {
		log.Printf("could not encode state record: %v", err)
		return
	}
	if err := s.storage.Set(StateKey, data); err != nil {
		log.Printf("could not persist state record (in-memory ledger unaffected): %v", err)
	}
}
