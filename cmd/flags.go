package main

import (
	"time"

	"github.com/kv-base-hack/coin-whatif/lib/coingecko"
	"github.com/urfave/cli/v2"
)

const (
	coingeckoURLFlag     = "coingecko-url"
	coingeckoAPIKeyFlag  = "coingecko-api-key"
	coingeckoPerPageFlag = "coingecko-per-page"
	coinsRefreshFlag     = "coins-refresh-interval"
	defaultCoinFlag      = "default-coin"
	ginModeFlag          = "gin-mode"
)

// NewFlags creates new cli flags.
func NewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    coingeckoURLFlag,
			Value:   coingecko.DefaultBaseURL,
			Usage:   "coingecko api base url",
			EnvVars: []string{"COINGECKO_URL"},
		},
		&cli.StringFlag{
			Name:    coingeckoAPIKeyFlag,
			Usage:   "optional coingecko demo api key",
			EnvVars: []string{"COINGECKO_API_KEY"},
		},
		&cli.IntFlag{
			Name:    coingeckoPerPageFlag,
			Value:   coingecko.DefaultPerPage,
			Usage:   "number of coins to load from coingecko",
			EnvVars: []string{"COINGECKO_PER_PAGE"},
		},
		&cli.DurationFlag{
			Name:    coinsRefreshFlag,
			Value:   0,
			Usage:   "duration to reload coins from coingecko, 0 loads them once",
			EnvVars: []string{"COINS_REFRESH_INTERVAL"},
		},
		&cli.StringFlag{
			Name:    defaultCoinFlag,
			Value:   "ethereum",
			Usage:   "coin selected on the index page",
			EnvVars: []string{"DEFAULT_COIN"},
		},
		&cli.StringFlag{
			Name:    ginModeFlag,
			Value:   "release",
			Usage:   "gin mode: debug, release, test",
			EnvVars: []string{"GIN_MODE"},
		},
	}
}

const (
	redisHostFlag     = "redis-host"
	redisPortFlag     = "redis-port"
	redisPasswordFlag = "redis-password"
	redisDBFlag       = "redis-db"
	redisTTLFlag      = "redis-coins-ttl"
)

// NewRedisFlags creates the redis cache flags. The cache is disabled when
// the host is empty.
func NewRedisFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    redisHostFlag,
			Usage:   "redis host, empty disables the coin cache",
			EnvVars: []string{"REDIS_HOST"},
		},
		&cli.StringFlag{
			Name:    redisPortFlag,
			Value:   "6379",
			EnvVars: []string{"REDIS_PORT"},
		},
		&cli.StringFlag{
			Name:    redisPasswordFlag,
			EnvVars: []string{"REDIS_PASSWORD"},
		},
		&cli.IntFlag{
			Name:    redisDBFlag,
			EnvVars: []string{"REDIS_DB"},
		},
		&cli.DurationFlag{
			Name:    redisTTLFlag,
			Value:   time.Minute * 10,
			Usage:   "how long cached coins stay valid",
			EnvVars: []string{"REDIS_COINS_TTL"},
		},
	}
}
