// Package coingecko is a small client for the CoinGecko public API, the
// market-data source of the tracker. Responses are cached on disk with a
// daily expiry, so repeated invocations within a day do not hit the network.
package coingecko

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Client queries the CoinGecko API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New returns a client against the public API, with daily response caching.
// The base URL can be overridden with the COINGECKO_API_BASE environment
// variable, e.g. to point at a pro endpoint or a local stub.
func New() *Client {
	base := os.Getenv("COINGECKO_API_BASE")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{baseURL: base, client: daily()}
}

// Coin is one row of the coins/markets endpoint: the identity and current
// market figures of an asset, in USD.
type Coin struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	MarketCapRank  int     `json:"market_cap_rank"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
}

// PricePoint is one sample of a coin's price history.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// Markets returns one page of coins ordered by market cap descending.
func (c *Client) Markets(page, perPage int) ([]Coin, error) {
	addr := fmt.Sprintf("%s/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=%d&sparkline=false",
		c.baseURL, perPage, page)
	var coins []Coin
	if err := jwget(c.client, addr, &coins); err != nil {
		return nil, fmt.Errorf("error retrieving markets page %d: %w", page, err)
	}
	return coins, nil
}

// CoinsByIDs returns the market rows of exactly the given coin ids. An empty
// id list returns an empty result without touching the network.
func (c *Client) CoinsByIDs(ids []string) ([]Coin, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	addr := fmt.Sprintf("%s/coins/markets?vs_currency=usd&order=market_cap_desc&ids=%s&sparkline=false",
		c.baseURL, url.QueryEscape(strings.Join(ids, ",")))
	var coins []Coin
	if err := jwget(c.client, addr, &coins); err != nil {
		return nil, fmt.Errorf("error retrieving coins %v: %w", ids, err)
	}
	return coins, nil
}

// CoinDetail is the subset of the coins/{id} endpoint the tracker displays.
type CoinDetail struct {
	ID             string
	Symbol         string
	Name           string
	CurrentPrice   float64
	MarketCap      float64
	High24h        float64
	Low24h         float64
	PriceChange24h float64
}

// CoinDetails returns the detail of one coin. The coins/{id} response is a
// deeply nested object, so it is read loosely with jsonpath instead of a
// full struct mapping.
func (c *Client) CoinDetails(id string) (CoinDetail, error) {
	addr := fmt.Sprintf("%s/coins/%s?localization=false&tickers=false&community_data=false&developer_data=false",
		c.baseURL, url.PathEscape(id))
	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return CoinDetail{}, fmt.Errorf("error retrieving coin %q: %w", id, err)
	}

	d := CoinDetail{ID: id}
	var err error
	if d.Symbol, err = jstring(jobj, "$.symbol"); err != nil {
		return CoinDetail{}, fmt.Errorf("error parsing coin %q: %w", id, err)
	}
	if d.Name, err = jstring(jobj, "$.name"); err != nil {
		return CoinDetail{}, fmt.Errorf("error parsing coin %q: %w", id, err)
	}
	if d.CurrentPrice, err = jfloat(jobj, "$.market_data.current_price.usd"); err != nil {
		return CoinDetail{}, fmt.Errorf("error parsing coin %q: %w", id, err)
	}
	if d.MarketCap, err = jfloat(jobj, "$.market_data.market_cap.usd"); err != nil {
		return CoinDetail{}, fmt.Errorf("error parsing coin %q: %w", id, err)
	}
	if d.High24h, err = jfloat(jobj, "$.market_data.high_24h.usd"); err != nil {
		return CoinDetail{}, fmt.Errorf("error parsing coin %q: %w", id, err)
	}
	if d.Low24h, err = jfloat(jobj, "$.market_data.low_24h.usd"); err != nil {
		return CoinDetail{}, fmt.Errorf("error parsing coin %q: %w", id, err)
	}
	if d.PriceChange24h, err = jfloat(jobj, "$.market_data.price_change_percentage_24h"); err != nil {
		return CoinDetail{}, fmt.Errorf("error parsing coin %q: %w", id, err)
	}
	return d, nil
}

// jstring evaluates a jsonpath expected to yield a string.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("%q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q: not a string: %v", path, jval)
	}
	return val, nil
}

// jfloat evaluates a jsonpath expected to yield a number.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q: not a float: %v", path, jval)
	}
	return val, nil
}

// History returns the price samples of a coin over the last days.
func (c *Client) History(id string, days int) ([]PricePoint, error) {
	addr := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d",
		c.baseURL, url.PathEscape(id), days)
	var chart struct {
		Prices [][2]float64 `json:"prices"`
	}
	if err := jwget(c.client, addr, &chart); err != nil {
		return nil, fmt.Errorf("error retrieving history of %q: %w", id, err)
	}

	points := make([]PricePoint, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		points = append(points, PricePoint{
			Time:  time.UnixMilli(int64(p[0])).UTC(),
			Price: p[1],
		})
	}
	return points, nil
}

// PriceDayAgo derives yesterday's price from the current price and the 24h
// change percentage reported by the API. It reports ok=false when the change
// is -100%, where no finite price existed a day ago.
func PriceDayAgo(currentPrice, change24h float64) (float64, bool) {
	if change24h == -100 {
		return 0, false
	}
	return currentPrice / (1 + change24h/100), true
}
