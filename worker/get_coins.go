package worker

import (
	"context"
	"errors"
	"time"

	"github.com/kv-base-hack/coin-whatif/common"
	"github.com/kv-base-hack/coin-whatif/lib/coingecko"
	"github.com/kv-base-hack/coin-whatif/storage"
	"github.com/kv-base-hack/coin-whatif/storage/cache"
	"github.com/kv-base-hack/coin-whatif/storage/db"
	"go.uber.org/zap"
)

type CoinProvider interface {
	Name() string
	GetAllCoins(ctx context.Context) ([]coingecko.Coin, error)
}

type CoinCache interface {
	GetCoins(ctx context.Context) ([]common.Coin, error)
	SetCoins(ctx context.Context, coins []common.Coin) error
}

// GetCoinsWorker loads the coin catalog into storage. With a zero duration
// the catalog is loaded once.
type GetCoinsWorker struct {
	log      *zap.SugaredLogger
	provider CoinProvider
	cache    CoinCache
	archive  db.DB
	storage  *storage.Storage
	duration time.Duration
}

func NewGetCoinsWorker(log *zap.SugaredLogger, provider CoinProvider, storage *storage.Storage, duration time.Duration) *GetCoinsWorker {
	return &GetCoinsWorker{
		log:      log.With("worker", "getCoins"),
		provider: provider,
		storage:  storage,
		duration: duration,
	}
}

func (g *GetCoinsWorker) WithCache(c CoinCache) *GetCoinsWorker {
	g.cache = c
	return g
}

func (g *GetCoinsWorker) WithArchive(a db.DB) *GetCoinsWorker {
	g.archive = a
	return g
}

func (g *GetCoinsWorker) Init(ctx context.Context) error {
	return g.process(ctx)
}

func (g *GetCoinsWorker) Run(ctx context.Context) {
	now := time.Now()
	_ = g.Init(ctx)
	g.log.Debugw("Execution time", "init", time.Since(now))
	if g.duration <= 0 {
		return
	}

	ticker := time.NewTicker(g.duration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = g.process(ctx)
		}
	}
}

func (g *GetCoinsWorker) process(ctx context.Context) error {
	coins, err := g.load(ctx)
	if err != nil {
		g.log.Errorw("error when get coins", "provider", g.provider.Name(), "err", err)
		g.storage.SetLoadError(err)
		return err
	}
	g.storage.SetCoins(coins)
	return nil
}

func (g *GetCoinsWorker) load(ctx context.Context) ([]common.Coin, error) {
	if g.cache != nil {
		coins, err := g.cache.GetCoins(ctx)
		if err == nil {
			g.log.Debugw("get coins from cache", "len", len(coins))
			return coins, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			g.log.Errorw("error when get coins from cache", "err", err)
		}
	}

	raw, err := g.provider.GetAllCoins(ctx)
	if err != nil {
		return nil, err
	}
	fetchedAt := time.Now().UTC()

	coins := make([]common.Coin, 0, len(raw))
	for _, r := range raw {
		coins = append(coins, r.Convert())
	}
	common.SortCoins(coins)
	g.log.Debugw("get coins from provider", "provider", g.provider.Name(), "len", len(coins))

	if g.cache != nil {
		if err := g.cache.SetCoins(ctx, coins); err != nil {
			g.log.Errorw("error when set coins to cache", "err", err)
		}
	}
	if g.archive != nil {
		if err := g.archive.SaveSnapshot(ctx, fetchedAt, coins); err != nil {
			g.log.Errorw("error when save coin snapshot", "err", err)
		} else {
			g.storage.SetSnapshotAt(fetchedAt)
		}
	}
	return coins, nil
}
