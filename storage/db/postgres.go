package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/kv-base-hack/coin-whatif/common"
	_ "github.com/lib/pq" // sql driver name: "postgres"
)

const CoinSnapshotTable = "coin_snapshots"

const createCoinSnapshotTable = `CREATE TABLE IF NOT EXISTS coin_snapshots (
	fetched_at        TIMESTAMPTZ NOT NULL,
	coin_id           TEXT NOT NULL,
	name              TEXT NOT NULL,
	symbol            TEXT NOT NULL,
	percentage_change DOUBLE PRECISION,
	image             TEXT NOT NULL,
	PRIMARY KEY (fetched_at, coin_id)
)`

type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{
		db: db,
	}
}

func (pg *Postgres) Migrate(ctx context.Context) error {
	if _, err := pg.db.ExecContext(ctx, createCoinSnapshotTable); err != nil {
		return fmt.Errorf("create %s: %w", CoinSnapshotTable, err)
	}
	return nil
}

func (pg *Postgres) SaveSnapshot(ctx context.Context, fetchedAt time.Time, coins []common.Coin) error {
	if len(coins) == 0 {
		return nil
	}
	query := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(CoinSnapshotTable).
		Columns("fetched_at", "coin_id", "name", "symbol", "percentage_change", "image")
	for _, c := range coins {
		query = query.Values(fetchedAt, c.ID, c.Name, c.Symbol, c.PercentageChange, c.Image)
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = pg.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

func (pg *Postgres) LatestSnapshot(ctx context.Context) (common.CoinSnapshot, error) {
	maxQuery := sq.Select("max(fetched_at)").From(CoinSnapshotTable)
	maxSQL, maxArgs, err := maxQuery.ToSql()
	if err != nil {
		return common.CoinSnapshot{}, err
	}
	var latest sql.NullTime
	if err = pg.db.GetContext(ctx, &latest, maxSQL, maxArgs...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.CoinSnapshot{}, ErrNoSnapshot
		}
		return common.CoinSnapshot{}, err
	}
	if !latest.Valid {
		return common.CoinSnapshot{}, ErrNoSnapshot
	}

	query := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("fetched_at", "coin_id", "name", "symbol", "percentage_change", "image").
		From(CoinSnapshotTable).
		Where(sq.Eq{"fetched_at": latest.Time}).
		OrderBy("symbol", "coin_id")
	stmt, args, err := query.ToSql()
	if err != nil {
		return common.CoinSnapshot{}, err
	}
	var rows []CoinSnapshotDB
	if err = pg.db.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return common.CoinSnapshot{}, err
	}

	coins := make([]common.Coin, 0, len(rows))
	for _, r := range rows {
		coins = append(coins, r.Convert())
	}
	return common.CoinSnapshot{
		FetchedAt: latest.Time,
		Coins:     coins,
	}, nil
}
