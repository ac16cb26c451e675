package db

import (
	"database/sql"
	"time"

	"github.com/kv-base-hack/coin-whatif/common"
)

type CoinSnapshotDB struct {
	FetchedAt        time.Time       `db:"fetched_at"`
	CoinID           string          `db:"coin_id"`
	Name             string          `db:"name"`
	Symbol           string          `db:"symbol"`
	PercentageChange sql.NullFloat64 `db:"percentage_change"`
	Image            string          `db:"image"`
}

func (c CoinSnapshotDB) Convert() common.Coin {
	coin := common.Coin{
		ID:     c.CoinID,
		Name:   c.Name,
		Symbol: c.Symbol,
		Image:  c.Image,
	}
	if c.PercentageChange.Valid {
		pct := c.PercentageChange.Float64
		coin.PercentageChange = &pct
	}
	return coin
}
