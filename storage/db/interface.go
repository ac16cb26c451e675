package db

import (
	"context"
	"errors"
	"time"

	"github.com/kv-base-hack/coin-whatif/common"
)

var ErrNoSnapshot = errors.New("no coin snapshot")

type DB interface {
	SaveSnapshot(ctx context.Context, fetchedAt time.Time, coins []common.Coin) error
	LatestSnapshot(ctx context.Context) (common.CoinSnapshot, error)
}
