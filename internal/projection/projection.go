// Package projection computes what a fiat amount invested a year ago in a
// coin would be worth today.
package projection

import (
	"errors"
	"strings"

	"github.com/kv-base-hack/coin-whatif/common"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid fiat amount")

// maxAmountLen bounds the digits handed to decimal parsing.
const maxAmountLen = 32

var (
	DefaultAmount = decimal.NewFromInt(1000)
	MaxAmount     = decimal.NewFromInt(1_000_000_000_000)

	hundred = decimal.NewFromInt(100)
)

// CalculateTotal returns floor(amount * (1 + pct/100)). ok is false when
// the percentage change is unknown.
func CalculateTotal(amount decimal.Decimal, percentageChange *float64) (total int64, ok bool) {
	if percentageChange == nil {
		return 0, false
	}
	pct := decimal.NewFromFloat(*percentageChange)
	return amount.Mul(hundred.Add(pct)).Div(hundred).Floor().IntPart(), true
}

// ParseAmount reads a user supplied amount. Negative amounts are clamped
// to zero, anything that is not a plain decimal number or exceeds MaxAmount
// is rejected. Exponent notation is refused.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountLen || strings.ContainsAny(raw, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.IsNegative() {
		return decimal.Zero, nil
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// View holds the user inputs and the projection derived from them. Every
// setter recomputes the projection.
type View struct {
	coins      []common.Coin
	selectedID string
	amount     decimal.Decimal

	projected    int64
	hasProjected bool
}

func NewView(coins []common.Coin, selectedID string, amount decimal.Decimal) *View {
	v := &View{
		coins:      coins,
		selectedID: selectedID,
		amount:     amount,
	}
	v.recompute()
	return v
}

func (v *View) SetCoins(coins []common.Coin) {
	v.coins = coins
	v.recompute()
}

func (v *View) Select(id string) {
	v.selectedID = id
	v.recompute()
}

func (v *View) SetAmount(amount decimal.Decimal) {
	v.amount = amount
	v.recompute()
}

func (v *View) recompute() {
	v.projected, v.hasProjected = 0, false
	coin, ok := common.FindCoin(v.coins, v.selectedID)
	if !ok {
		return
	}
	v.projected, v.hasProjected = CalculateTotal(v.amount, coin.PercentageChange)
}

func (v *View) Coins() []common.Coin {
	return v.coins
}

func (v *View) SelectedID() string {
	return v.selectedID
}

func (v *View) Selected() (common.Coin, bool) {
	return common.FindCoin(v.coins, v.selectedID)
}

func (v *View) Amount() decimal.Decimal {
	return v.amount
}

// Projected returns the projected amount, ok is false when there is no
// result to show.
func (v *View) Projected() (int64, bool) {
	return v.projected, v.hasProjected
}

func (v *View) OtherCoins() []Candidate {
	return OtherCoins(v.coins, v.selectedID, v.amount)
}
