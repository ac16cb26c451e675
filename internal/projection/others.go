package projection

import (
	"sort"

	"github.com/kv-base-hack/coin-whatif/common"
	"github.com/shopspring/decimal"
)

const (
	otherCoinsLimit     = 5
	otherCoinsThreshold = 20.0
)

type Candidate struct {
	Coin      common.Coin `json:"coin"`
	Projected int64       `json:"projected_amount"`
}

// OtherCoins suggests up to five coins other than selectedID that gained
// more than 20% over the year, best performers first.
func OtherCoins(coins []common.Coin, selectedID string, amount decimal.Decimal) []Candidate {
	picked := make([]common.Coin, 0)
	for _, c := range coins {
		if c.ID == selectedID || c.PercentageChange == nil {
			continue
		}
		if *c.PercentageChange > otherCoinsThreshold {
			picked = append(picked, c)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		pi, pj := *picked[i].PercentageChange, *picked[j].PercentageChange
		if pi != pj {
			return pi > pj
		}
		return picked[i].ID < picked[j].ID
	})
	if len(picked) > otherCoinsLimit {
		picked = picked[:otherCoinsLimit]
	}

	res := make([]Candidate, 0, len(picked))
	for _, c := range picked {
		total, _ := CalculateTotal(amount, c.PercentageChange)
		res = append(res, Candidate{
			Coin:      c,
			Projected: total,
		})
	}
	return res
}
