package common

import (
	"sort"
	"time"
)

type LoadStatus string

const (
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusReady   LoadStatus = "ready"
	LoadStatusFailed  LoadStatus = "failed"
)

func (s LoadStatus) String() string {
	return string(s)
}

// Coin is the normalized view of one coin from the market data provider.
type Coin struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	// PercentageChange is the trailing one year price change in percent.
	// nil when the provider has no data for the coin.
	PercentageChange *float64 `json:"percentage_change"`
	Image            string   `json:"image"`
}

func (c Coin) HasPercentageChange() bool {
	return c.PercentageChange != nil
}

// Clone returns a copy that shares no memory with c.
func (c Coin) Clone() Coin {
	if c.PercentageChange != nil {
		pct := *c.PercentageChange
		c.PercentageChange = &pct
	}
	return c
}

func CloneCoins(coins []Coin) []Coin {
	res := make([]Coin, len(coins))
	for i, c := range coins {
		res[i] = c.Clone()
	}
	return res
}

type CoinSnapshot struct {
	FetchedAt time.Time `json:"fetched_at"`
	Coins     []Coin    `json:"coins"`
}

// SortCoins orders coins by symbol, then by id for coins sharing a symbol.
func SortCoins(coins []Coin) {
	sort.SliceStable(coins, func(i, j int) bool {
		if coins[i].Symbol != coins[j].Symbol {
			return coins[i].Symbol < coins[j].Symbol
		}
		return coins[i].ID < coins[j].ID
	})
}

func FindCoin(coins []Coin, id string) (Coin, bool) {
	for _, c := range coins {
		if c.ID == id {
			return c, true
		}
	}
	return Coin{}, false
}
