package tracker

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTransactionJSONRoundTrip(t *testing.T) {
	tx := Transaction{
		ID:           "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		CoinID:       "bitcoin",
		Type:         TxBuy,
		AmountCrypto: Q(1.5),
		AmountFiat:   USD(45000.50),
		Date:         time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC),
		Fee:          USD(12.5),
		Notes:        "dca",
	}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Transaction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !got.Equal(tx) {
		t.Errorf("round trip = %+v, want %+v", got, tx)
	}
}

func TestTransactionJSONLayout(t *testing.T) {
	tx := Transaction{
		ID:           "id-1",
		CoinID:       "bitcoin",
		Type:         TxBuy,
		AmountCrypto: Q(1.5),
		AmountFiat:   USD(45000),
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	// Amounts are bare numbers under the original field names.
	for _, want := range []string{`"coinId":"bitcoin"`, `"amountCrypto":1.5`, `"amountFiat":45000`, `"date":"2024-01-10T00:00:00Z"`} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled transaction missing %s:\n%s", want, got)
		}
	}
	// Empty fee and notes are omitted.
	for _, reject := range []string{`"fee"`, `"notes"`} {
		if strings.Contains(got, reject) {
			t.Errorf("marshaled transaction should omit %s:\n%s", reject, got)
		}
	}
}

func TestDecodeLegacyOnlyRecord(t *testing.T) {
	// A record written by the previous generation of the app: no transactions
	// field, no migrated flag.
	data := []byte(`{"favorites":["bitcoin"],"portfolio":{"bitcoin":{"amount":0.5},"ethereum":{"amount":10}}}`)

	st, err := decodeState(data)
	if err != nil {
		t.Fatalf("decodeState() error = %v", err)
	}
	if st.Migrated {
		t.Error("Migrated = true, want false")
	}
	if len(st.Transactions) != 0 {
		t.Errorf("len(Transactions) = %d, want 0", len(st.Transactions))
	}
	if len(st.Portfolio) != 2 {
		t.Fatalf("len(Portfolio) = %d, want 2", len(st.Portfolio))
	}
	if got, want := st.Portfolio["bitcoin"].Amount, Q(0.5); !got.Equal(want) {
		t.Errorf("Portfolio[bitcoin] = %v, want %v", got, want)
	}
}

func TestEncodeStateAlwaysCarriesCollections(t *testing.T) {
	data, err := encodeState(state{})
	if err != nil {
		t.Fatalf("encodeState() error = %v", err)
	}
	got := string(data)
	for _, want := range []string{`"favorites":[]`, `"transactions":[]`, `"migrated":false`} {
		if !strings.Contains(got, want) {
			t.Errorf("encoded state missing %s:\n%s", want, got)
		}
	}
}

func TestParseTxType(t *testing.T) {
	for _, valid := range []string{"buy", "sell", "transfer"} {
		if _, err := ParseTxType(valid); err != nil {
			t.Errorf("ParseTxType(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseTxType("stake"); err == nil {
		t.Error("ParseTxType(stake) error = nil, want error")
	}
}
