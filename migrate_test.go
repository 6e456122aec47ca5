package tracker

import "testing"

func TestMigrateLegacyPortfolio(t *testing.T) {
	storage := NewMemoryStorage()
	record, err := encodeState(state{
		Favorites: []string{"bitcoin"},
		Portfolio: map[string]LegacyPosition{
			"Bitcoin":  {Amount: Q(0.5)},
			"ethereum": {Amount: Q(10)},
			"dust":     {Amount: Q(0)},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.Set(StateKey, record); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(storage)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if s.Migrated() {
		t.Fatal("Migrated() = true before migration")
	}

	s.MigrateLegacyPortfolio()

	if !s.Migrated() {
		t.Error("Migrated() = false after migration")
	}
	txs := s.Transactions()
	// The zero-amount position is skipped.
	if len(txs) != 2 {
		t.Fatalf("len(Transactions()) = %d, want 2", len(txs))
	}
	for _, tx := range txs {
		if tx.Type != TxBuy {
			t.Errorf("migrated transaction type = %q, want buy", tx.Type)
		}
		if !tx.AmountFiat.IsZero() {
			t.Errorf("migrated AmountFiat = %v, want 0", tx.AmountFiat)
		}
		if tx.Notes != migratedNote {
			t.Errorf("migrated Notes = %q, want %q", tx.Notes, migratedNote)
		}
	}
	// Coin ids are lowercased on the way in.
	if got, want := s.Holdings("bitcoin"), Q(0.5); !got.Equal(want) {
		t.Errorf("Holdings(bitcoin) = %v, want %v", got, want)
	}
	if got, want := s.Holdings("ethereum"), Q(10); !got.Equal(want) {
		t.Errorf("Holdings(ethereum) = %v, want %v", got, want)
	}
	// Cost basis of migrated positions starts at zero.
	if got := s.CostBasis("bitcoin"); !got.IsZero() {
		t.Errorf("CostBasis(bitcoin) = %v, want 0", got)
	}
}

func TestMigrateLegacyPortfolioIsIdempotent(t *testing.T) {
	storage := NewMemoryStorage()
	record, err := encodeState(state{
		Portfolio: map[string]LegacyPosition{"bitcoin": {Amount: Q(1)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.Set(StateKey, record); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(storage)
	if err != nil {
		t.Fatal(err)
	}
	s.MigrateLegacyPortfolio()
	s.MigrateLegacyPortfolio()
	if got := len(s.Transactions()); got != 1 {
		t.Errorf("len(Transactions()) after double migration = %d, want 1", got)
	}

	// The migrated flag is persisted, a reload does not migrate again either.
	reloaded, err := NewStore(storage)
	if err != nil {
		t.Fatal(err)
	}
	reloaded.MigrateLegacyPortfolio()
	if got := len(reloaded.Transactions()); got != 1 {
		t.Errorf("len(Transactions()) after reload migration = %d, want 1", got)
	}
	if !reloaded.Migrated() {
		t.Error("Migrated() = false after reload")
	}
}

func TestMigrateEmptyPortfolio(t *testing.T) {
	s := newTestStore(t)
	s.MigrateLegacyPortfolio()
	if !s.Migrated() {
		t.Error("Migrated() = false after migrating empty portfolio")
	}
	if got := len(s.Transactions()); got != 0 {
		t.Errorf("len(Transactions()) = %d, want 0", got)
	}
}
