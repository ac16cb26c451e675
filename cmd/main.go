package main

import (
	"context"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kv-base-hack/coin-whatif/internal/httputil"
	"github.com/kv-base-hack/coin-whatif/internal/logger"
	"github.com/kv-base-hack/coin-whatif/internal/server"
	"github.com/kv-base-hack/coin-whatif/lib/coingecko"
	"github.com/kv-base-hack/coin-whatif/storage"
	"github.com/kv-base-hack/coin-whatif/storage/cache"
	"github.com/kv-base-hack/coin-whatif/storage/db"
	"github.com/kv-base-hack/coin-whatif/worker"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	app := cli.NewApp()
	app.Name = "coin-whatif"
	app.Usage = "what would a coin bought a year ago be worth today"
	app.Action = run
	app.Flags = append(app.Flags, logger.NewFlags()...)
	app.Flags = append(app.Flags, NewPostgreSQLFlags()...)
	app.Flags = append(app.Flags, NewRedisFlags()...)
	app.Flags = append(app.Flags, NewFlags()...)
	app.Flags = append(app.Flags, httputil.NewHTTPCliFlags(httputil.Port)...)

	sort.Sort(cli.FlagsByName(app.Flags))

	if err := app.Run(os.Args); err != nil {
		panic(err)
	}
}

func run(c *cli.Context) error {
	logger, flusher, err := logger.NewLogger(c)
	if err != nil {
		return err
	}
	defer flusher()

	zap.ReplaceGlobals(logger)
	log := logger.Sugar()
	log.Debugw("Starting application...")

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewStorage(log)

	cg := coingecko.NewCoinGecko(c.String(coingeckoURLFlag), c.String(coingeckoAPIKeyFlag), c.Int(coingeckoPerPageFlag))
	getCoins := worker.NewGetCoinsWorker(log, cg, store, c.Duration(coinsRefreshFlag))

	if redisHost := c.String(redisHostFlag); redisHost != "" {
		redisAddr := redisHost + ":" + c.String(redisPortFlag)
		redis := cache.NewRedisClient(redisAddr, c.String(redisPasswordFlag), c.Int(redisDBFlag))
		defer redis.Close()
		getCoins.WithCache(cache.NewRedisCache(redis, c.Duration(redisTTLFlag)))
		log.Infow("coin cache enabled", "addr", redisAddr)
	}

	if postgresEnabled(c) {
		database, err := NewDBFromContext(c)
		if err != nil {
			log.Errorw("error when connect to database", "err", err)
			return err
		}
		defer database.Close()

		pg := db.NewPostgres(database)
		if err := pg.Migrate(ctx); err != nil {
			log.Errorw("error when migrate database", "err", err)
			return err
		}
		getCoins.WithArchive(pg)
		loadSnapshotAt(ctx, log, pg, store)
	}

	go getCoins.Run(ctx)

	gin.SetMode(c.String(ginModeFlag))
	host := httputil.NewHTTPAddressFromContext(c)
	server := server.NewServer(host, store, c.String(defaultCoinFlag))
	return server.Run()
}

// loadSnapshotAt seeds the archive freshness reported on /healthz.
func loadSnapshotAt(ctx context.Context, log *zap.SugaredLogger, archive db.DB, store *storage.Storage) {
	snapshot, err := archive.LatestSnapshot(ctx)
	if err != nil {
		log.Infow("no previous coin snapshot", "err", err)
		return
	}
	store.SetSnapshotAt(snapshot.FetchedAt)
	log.Infow("previous coin snapshot", "fetched_at", snapshot.FetchedAt, "coins", len(snapshot.Coins))
}
