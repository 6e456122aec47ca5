package cmd

import (
	"testing"
	"time"

	"github.com/triantafd/crypto-portfolio-tracker"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"2024-01-10T12:30:00Z", time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.in)
		if err != nil {
			t.Errorf("parseDate(%q) error = %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseDate("10/01/2024"); err == nil {
		t.Error("parseDate(10/01/2024) error = nil, want error")
	}

	now, err := parseDate("")
	if err != nil {
		t.Fatalf("parseDate(\"\") error = %v", err)
	}
	if time.Since(now) > time.Minute {
		t.Errorf("parseDate(\"\") = %v, want about now", now)
	}
}

func TestRecordFlagsDraft(t *testing.T) {
	valid := recordFlags{coin: "Bitcoin", amount: 1.5, fiat: 45000, fee: 10, date: "2024-01-10", notes: "dca"}
	draft, err := valid.draft(tracker.TxBuy)
	if err != nil {
		t.Fatalf("draft() error = %v", err)
	}
	if draft.CoinID != "bitcoin" {
		t.Errorf("CoinID = %q, want lowercased bitcoin", draft.CoinID)
	}
	if draft.Type != tracker.TxBuy || !draft.AmountCrypto.Equal(tracker.Q(1.5)) {
		t.Errorf("draft = %+v", draft)
	}

	invalid := []recordFlags{
		{amount: 1, fiat: 100},                        // no coin
		{coin: "bitcoin", amount: 0, fiat: 100},       // no amount
		{coin: "bitcoin", amount: -1, fiat: 100},      // negative amount
		{coin: "bitcoin", amount: 1, fiat: -100},      // negative fiat
		{coin: "bitcoin", amount: 1, fee: -1},         // negative fee
		{coin: "bitcoin", amount: 1, date: "someday"}, // bad date
	}
	for i, p := range invalid {
		if _, err := p.draft(tracker.TxBuy); err == nil {
			t.Errorf("draft(#%d %+v) error = nil, want error", i, p)
		}
	}
}
