package tracker

import (
	"testing"
	"time"
)

func TestNewHoldingReport(t *testing.T) {
	txs := []Transaction{
		buy("bitcoin", 1.0, 30000, "2024-01-10"),
		buy("bitcoin", 0.7, 20000, "2024-02-10"),
	}

	r := NewHoldingReport(txs, "bitcoin", 50000, 45000)
	if !r.Holdings.Equal(Q(1.7)) {
		t.Errorf("Holdings = %v, want 1.7", r.Holdings)
	}
	if !r.CostBasis.Equal(USD(50000)) {
		t.Errorf("CostBasis = %v, want 50000", r.CostBasis)
	}
	if !r.Value.Equal(USD(85000)) {
		t.Errorf("Value = %v, want 85000", r.Value)
	}
	if !r.AllTime.Amount.Equal(USD(35000)) || !r.AllTime.Percent.Equal(70) {
		t.Errorf("AllTime = %+v, want {35000 70%%}", r.AllTime)
	}
	if !r.Day.Amount.Equal(USD(8500)) {
		t.Errorf("Day.Amount = %v, want 8500", r.Day.Amount)
	}

	// Without price history the day profit is zero, not garbage.
	r = NewHoldingReport(txs, "bitcoin", 50000, 0)
	if !r.Day.Amount.IsZero() || !r.Day.Percent.Equal(0) {
		t.Errorf("Day without history = %+v, want zero", r.Day)
	}
}

func TestNewSummaryReport(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	holdings := []HoldingReport{
		{
			CoinID: "bitcoin", Value: USD(85000), CostBasis: USD(50000),
			ValueDayAgo: USD(76500), Day: Profit{Amount: USD(8500)},
		},
		{
			CoinID: "ethereum", Value: USD(15000), CostBasis: USD(20000),
			ValueDayAgo: USD(16000), Day: Profit{Amount: USD(-1000)},
		},
	}

	s := NewSummaryReport(date, holdings)
	if !s.TotalValue.Equal(USD(100000)) {
		t.Errorf("TotalValue = %v, want 100000", s.TotalValue)
	}
	if !s.TotalCost.Equal(USD(70000)) {
		t.Errorf("TotalCost = %v, want 70000", s.TotalCost)
	}
	// 30000 profit on 70000 invested.
	if !s.AllTime.Amount.Equal(USD(30000)) || !s.AllTime.Percent.Equal(42.8571) {
		t.Errorf("AllTime = %+v, want {30000 42.86%%}", s.AllTime)
	}
	// 7500 day profit on 92500 of yesterday's value.
	if !s.Day.Amount.Equal(USD(7500)) || !s.Day.Percent.Equal(8.1081) {
		t.Errorf("Day = %+v, want {7500 8.11%%}", s.Day)
	}

	empty := NewSummaryReport(date, nil)
	if !empty.TotalValue.IsZero() || !empty.AllTime.Percent.Equal(0) || !empty.Day.Percent.Equal(0) {
		t.Errorf("empty summary = %+v, want zeros", empty)
	}
}
