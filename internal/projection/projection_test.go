package projection

import (
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/kv-base-hack/coin-whatif/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 {
	return &v
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		amount int64
		pct    float64
		want   int64
	}{
		{amount: 1000, pct: 0, want: 1000},
		{amount: 1000, pct: -50, want: 500},
		{amount: 1000, pct: 100, want: 2000},
		{amount: 1000, pct: -100, want: 0},
		{amount: 100, pct: -7, want: 93},
		{amount: 1000, pct: 7.123, want: 1071},
		{amount: 1000, pct: 12.3456, want: 1123},
		{amount: 0, pct: 250, want: 0},
	}
	for _, tt := range tests {
		got, ok := CalculateTotal(decimal.NewFromInt(tt.amount), pct(tt.pct))
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "amount=%d pct=%v", tt.amount, tt.pct)
	}
}

// exactFloor computes floor(a * (100 + p) / 100) in rational arithmetic.
func exactFloor(a int64, p string) int64 {
	pr, _ := new(big.Rat).SetString(p)
	r := new(big.Rat).Add(big.NewRat(100, 1), pr)
	r.Mul(r, big.NewRat(a, 100))
	q := new(big.Int).Div(r.Num(), r.Denom()) // Euclidean, floors for a positive denominator
	return q.Int64()
}

func TestCalculateTotalMatchesFloor(t *testing.T) {
	for _, p := range []string{"-99.5", "-33.3", "-7", "0.1", "1.5", "19.99", "250.25", "1234.5"} {
		for _, a := range []int64{1, 10, 100, 999, 1000, 123456} {
			f, err := strconv.ParseFloat(p, 64)
			require.NoError(t, err)
			got, ok := CalculateTotal(decimal.NewFromInt(a), &f)
			require.True(t, ok)
			assert.Equal(t, exactFloor(a, p), got, "amount=%d pct=%s", a, p)
		}
	}
}

func TestCalculateTotalUnknownPercentage(t *testing.T) {
	got, ok := CalculateTotal(DefaultAmount, nil)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "1000", want: "1000"},
		{raw: " 250.5 ", want: "250.5"},
		{raw: "0.000001", want: "0.000001"},
		{raw: "-20", want: "0"},
		{raw: "0", want: "0"},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "10$", wantErr: true},
		{raw: "1000000000001", wantErr: true},
		{raw: "1e3", wantErr: true},
		{raw: "1E3", wantErr: true},
		{raw: "1e-100000", wantErr: true},
		{raw: "1e100000", wantErr: true},
		{raw: "0." + strings.Repeat("0", 40) + "1", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAmount, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "raw=%q got=%s", tt.raw, got)
	}
}

func testCoins() []common.Coin {
	return []common.Coin{
		{ID: "bitcoin", Symbol: "BTC", PercentageChange: pct(100)},
		{ID: "ethereum", Symbol: "ETH", PercentageChange: pct(-50)},
		{ID: "newcoin", Symbol: "NEW"},
	}
}

func TestViewRecomputes(t *testing.T) {
	v := NewView(nil, "bitcoin", DefaultAmount)
	_, ok := v.Projected()
	assert.False(t, ok, "no catalog yet")

	v.SetCoins(testCoins())
	got, ok := v.Projected()
	require.True(t, ok)
	assert.Equal(t, int64(2000), got)

	v.Select("ethereum")
	got, ok = v.Projected()
	require.True(t, ok)
	assert.Equal(t, int64(500), got)

	v.SetAmount(decimal.NewFromInt(3000))
	got, ok = v.Projected()
	require.True(t, ok)
	assert.Equal(t, int64(1500), got)
	assert.Equal(t, "ethereum", v.SelectedID())
	assert.Len(t, v.Coins(), 3)

	v.Select("newcoin")
	got, ok = v.Projected()
	assert.False(t, ok)
	assert.Zero(t, got)

	v.Select("unknown")
	_, ok = v.Projected()
	assert.False(t, ok)
	_, ok = v.Selected()
	assert.False(t, ok)
}

func TestOtherCoins(t *testing.T) {
	coins := []common.Coin{
		{ID: "a", PercentageChange: pct(25)},
		{ID: "b", PercentageChange: pct(300)},
		{ID: "c", PercentageChange: pct(20)},
		{ID: "d", PercentageChange: pct(50)},
		{ID: "e", PercentageChange: pct(50)},
		{ID: "f"},
		{ID: "g", PercentageChange: pct(21)},
		{ID: "h", PercentageChange: pct(22)},
		{ID: "selected", PercentageChange: pct(1000)},
	}

	got := OtherCoins(coins, "selected", DefaultAmount)
	require.Len(t, got, 5)

	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.Coin.ID)
		assert.NotEqual(t, "selected", c.Coin.ID)
	}
	assert.Equal(t, []string{"b", "d", "e", "a", "h"}, ids)
	assert.Equal(t, int64(4000), got[0].Projected)
	assert.Equal(t, int64(1500), got[1].Projected)
}

func TestOtherCoinsFewCandidates(t *testing.T) {
	v := NewView(testCoins(), "ethereum", DefaultAmount)
	got := v.OtherCoins()
	require.Len(t, got, 1)
	assert.Equal(t, "bitcoin", got[0].Coin.ID)

	v.Select("bitcoin")
	assert.Empty(t, v.OtherCoins())
}
