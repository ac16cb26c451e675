package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/kv-base-hack/coin-whatif/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(sqlx.NewDb(db, "sqlmock")), mock
}

func TestSaveSnapshot(t *testing.T) {
	pg, mock := newMockPostgres(t)
	fetchedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	pct := 42.5
	coins := []common.Coin{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", PercentageChange: &pct, Image: "btc.png"},
		{ID: "newcoin", Name: "New", Symbol: "NEW", Image: "new.png"},
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO coin_snapshots (fetched_at,coin_id,name,symbol,percentage_change,image) VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12)")).
		WithArgs(fetchedAt, "bitcoin", "Bitcoin", "BTC", 42.5, "btc.png",
			fetchedAt, "newcoin", "New", "NEW", nil, "new.png").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, pg.SaveSnapshot(context.Background(), fetchedAt, coins))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshotEmpty(t *testing.T) {
	pg, mock := newMockPostgres(t)
	require.NoError(t, pg.SaveSnapshot(context.Background(), time.Now(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestSnapshot(t *testing.T) {
	pg, mock := newMockPostgres(t)
	fetchedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT max(fetched_at) FROM coin_snapshots")).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(fetchedAt))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT fetched_at, coin_id, name, symbol, percentage_change, image FROM coin_snapshots WHERE fetched_at = $1 ORDER BY symbol, coin_id")).
		WithArgs(fetchedAt).
		WillReturnRows(sqlmock.NewRows([]string{"fetched_at", "coin_id", "name", "symbol", "percentage_change", "image"}).
			AddRow(fetchedAt, "bitcoin", "Bitcoin", "BTC", 42.5, "btc.png").
			AddRow(fetchedAt, "newcoin", "New", "NEW", nil, "new.png"))

	snapshot, err := pg.LatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fetchedAt, snapshot.FetchedAt)
	require.Len(t, snapshot.Coins, 2)
	require.NotNil(t, snapshot.Coins[0].PercentageChange)
	assert.InDelta(t, 42.5, *snapshot.Coins[0].PercentageChange, 1e-9)
	assert.Nil(t, snapshot.Coins[1].PercentageChange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestSnapshotEmptyTable(t *testing.T) {
	pg, mock := newMockPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT max(fetched_at) FROM coin_snapshots")).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	_, err := pg.LatestSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	pg, mock := newMockPostgres(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS coin_snapshots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, pg.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
