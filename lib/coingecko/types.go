package coingecko

import (
	"errors"
	"strings"

	"github.com/kv-base-hack/coin-whatif/common"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected status code")
	ErrMalformedResponse = errors.New("malformed coins response")
)

type Coin struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Symbol     string      `json:"symbol"`
	Image      Image       `json:"image"`
	MarketData *MarketData `json:"market_data"`
}

type Image struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

type MarketData struct {
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  *float64 `json:"price_change_percentage_7d"`
	PriceChangePercentage30d *float64 `json:"price_change_percentage_30d"`
	PriceChangePercentage1y  *float64 `json:"price_change_percentage_1y"`
}

// Convert normalizes the raw coin. A coin without market data keeps a nil
// percentage change.
func (c Coin) Convert() common.Coin {
	coin := common.Coin{
		ID:     c.ID,
		Name:   c.Name,
		Symbol: strings.ToUpper(c.Symbol),
		Image:  c.Image.Large,
	}
	if c.MarketData != nil && c.MarketData.PriceChangePercentage1y != nil {
		pct := *c.MarketData.PriceChangePercentage1y
		coin.PercentageChange = &pct
	}
	return coin
}
