package tracker

import (
	"slices"

	"github.com/shopspring/decimal"
)

// This file holds the pure portfolio calculations. Every function is
// deterministic and side-effect free: metrics are derived from a transaction
// snapshot plus externally fetched prices, never from stored state. An empty
// list, or a list with no matching coin id, always yields the neutral zero
// result, never an error.

// Profit is an absolute profit together with its percentage expression.
type Profit struct {
	Amount  Money
	Percent Percent
}

// Holdings computes the net quantity of a coin owned according to the
// transaction list: buys and transfers add, sells subtract.
func Holdings(transactions []Transaction, coinID string) Quantity {
	var total Quantity
	for _, tx := range transactions {
		if tx.CoinID != coinID {
			continue
		}
		switch tx.Type {
		case TxBuy, TxTransfer:
			total = total.Add(tx.AmountCrypto)
		case TxSell:
			total = total.Sub(tx.AmountCrypto)
		}
	}
	return total
}

// CostBasis computes the net fiat amount invested in a coin.
//
// The fee is added for both buys and sells: fees always increase the cost
// basis, they are never recovered by a sale. Transfers contribute nothing.
func CostBasis(transactions []Transaction, coinID string) Money {
	total := USD(decimal.Zero)
	for _, tx := range transactions {
		if tx.CoinID != coinID {
			continue
		}
		switch tx.Type {
		case TxBuy:
			total = total.Add(tx.AmountFiat).Add(tx.Fee)
		case TxSell:
			total = total.Sub(tx.AmountFiat).Add(tx.Fee)
		}
	}
	return total
}

// AvgBuyPrice computes the average fiat cost of one unit of the coin, or zero
// when nothing is held.
func AvgBuyPrice(transactions []Transaction, coinID string) Money {
	holdings := Holdings(transactions, coinID)
	if !holdings.IsPositive() {
		return USD(decimal.Zero)
	}
	return CostBasis(transactions, coinID).Div(holdings)
}

// CurrentValue computes the fiat value of a position at the given price.
func CurrentValue(holdings Quantity, currentPrice float64) Money {
	return USD(holdings.value.Mul(decimal.NewFromFloat(currentPrice)))
}

// AllTimeProfit computes the absolute and percentage profit of a position
// against its cost basis. A zero (or negative) cost basis reports a zero
// percentage even when the absolute profit is not zero.
func AllTimeProfit(currentValue, costBasis Money) Profit {
	profit := currentValue.Sub(costBasis)
	var percent Percent
	if costBasis.IsPositive() {
		percent = Percent(profit.value.Div(costBasis.value).InexactFloat64() * 100)
	}
	return Profit{Amount: profit, Percent: percent}
}

// DayProfit computes the value change of a position attributable to the price
// movement between priceDayAgo and currentPrice. The percentage is relative
// to the position's value a day ago, and zero when that value is not positive.
func DayProfit(holdings Quantity, currentPrice, priceDayAgo float64) Profit {
	diff := decimal.NewFromFloat(currentPrice).Sub(decimal.NewFromFloat(priceDayAgo))
	profit := USD(holdings.value.Mul(diff))

	valueDayAgo := holdings.value.Mul(decimal.NewFromFloat(priceDayAgo))
	var percent Percent
	if valueDayAgo.IsPositive() {
		percent = Percent(profit.value.Div(valueDayAgo).InexactFloat64() * 100)
	}
	return Profit{Amount: profit, Percent: percent}
}

// CoinIDs returns the distinct coin ids present in the transaction list,
// sorted for deterministic output.
func CoinIDs(transactions []Transaction) []string {
	visited := make(map[string]struct{})
	for _, tx := range transactions {
		visited[tx.CoinID] = struct{}{}
	}
	ids := make([]string, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
