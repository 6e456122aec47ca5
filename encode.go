package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are numbers in the state record, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// StateKey is the storage key under which the whole portfolio state is
// persisted, kept identical to the key the previous generation of the app
// used so that existing data is picked up as-is.
const StateKey = "crypto-tracker-storage"

// LegacyPosition is a position from the previous generation of the portfolio,
// a bare coin quantity with no purchase history.
type LegacyPosition struct {
	Amount Quantity `json:"amount"`
}

// state is the single persisted record: everything the store owns, as one
// JSON object. The layout is readable by and from the previous generation of
// the app; in particular the legacy portfolio map is carried along untouched
// after migration.
type state struct {
	Favorites    []string                  `json:"favorites"`
	Transactions []Transaction             `json:"transactions"`
	Portfolio    map[string]LegacyPosition `json:"portfolio,omitempty"`
	Migrated     bool                      `json:"migrated"`
}

// encodeState marshals the state record. Nil slices are encoded as empty
// lists so the record always carries every field.
func encodeState(st state) ([]byte, error) {
	if st.Favorites == nil {
		st.Favorites = []string{}
	}
	if st.Transactions == nil {
		st.Transactions = []Transaction{}
	}
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// decodeState unmarshals a state record. Missing fields decode to their zero
// values, so records written before a field existed remain readable.
func decodeState(data []byte) (state, error) {
	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return state{}, fmt.Errorf("failed to decode state: %w", err)
	}
	if st.Portfolio == nil {
		st.Portfolio = make(map[string]LegacyPosition)
	}
	return st, nil
}
