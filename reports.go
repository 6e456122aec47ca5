package tracker

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoldingReport is the full valuation of one coin position: ledger-derived
// figures combined with a market price fetched by the caller.
type HoldingReport struct {
	CoinID string
	Name   string // display name, empty when market data is unavailable.
	Symbol string

	Holdings     Quantity
	CostBasis    Money
	AvgBuyPrice  Money
	CurrentPrice float64

	Value       Money
	ValueDayAgo Money
	AllTime     Profit
	Day         Profit
}

// SummaryReport aggregates the holding reports of a whole portfolio.
type SummaryReport struct {
	Date     time.Time
	Holdings []HoldingReport

	TotalValue Money
	TotalCost  Money
	AllTime    Profit
	Day        Profit
}

// NewHoldingReport values one coin position from the transaction list and the
// given prices. A priceDayAgo of zero (price history unavailable) yields a
// zero day profit.
func NewHoldingReport(transactions []Transaction, coinID string, currentPrice, priceDayAgo float64) HoldingReport {
	holdings := Holdings(transactions, coinID)
	costBasis := CostBasis(transactions, coinID)
	value := CurrentValue(holdings, currentPrice)

	r := HoldingReport{
		CoinID:       coinID,
		Holdings:     holdings,
		CostBasis:    costBasis,
		AvgBuyPrice:  AvgBuyPrice(transactions, coinID),
		CurrentPrice: currentPrice,
		Value:        value,
		ValueDayAgo:  CurrentValue(holdings, priceDayAgo),
		AllTime:      AllTimeProfit(value, costBasis),
	}
	if priceDayAgo > 0 {
		r.Day = DayProfit(holdings, currentPrice, priceDayAgo)
	} else {
		r.Day = Profit{Amount: USD(decimal.Zero)}
	}
	return r
}

// NewSummaryReport aggregates the given holding reports as of date. Totals
// are plain sums; the aggregate percentages are recomputed from the totals,
// not averaged over positions.
func NewSummaryReport(date time.Time, holdings []HoldingReport) SummaryReport {
	totalValue := USD(decimal.Zero)
	totalCost := USD(decimal.Zero)
	totalDayAgo := USD(decimal.Zero)
	dayAmount := USD(decimal.Zero)
	for _, h := range holdings {
		totalValue = totalValue.Add(h.Value)
		totalCost = totalCost.Add(h.CostBasis)
		totalDayAgo = totalDayAgo.Add(h.ValueDayAgo)
		dayAmount = dayAmount.Add(h.Day.Amount)
	}

	day := Profit{Amount: dayAmount}
	if totalDayAgo.IsPositive() {
		day.Percent = Percent(dayAmount.value.Div(totalDayAgo.value).InexactFloat64() * 100)
	}

	return SummaryReport{
		Date:       date,
		Holdings:   holdings,
		TotalValue: totalValue,
		TotalCost:  totalCost,
		AllTime:    AllTimeProfit(totalValue, totalCost),
		Day:        day,
	}
}
