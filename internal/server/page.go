package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kv-base-hack/coin-whatif/common"
	"github.com/kv-base-hack/coin-whatif/internal/projection"
	"github.com/kv-base-hack/coin-whatif/util"
)

const pageTemplate = "index.html"

type otherCoinRow struct {
	Symbol string
	Name   string
	Result string
}

type pageData struct {
	Coins      []common.Coin
	SelectedID string
	Selected   *common.Coin
	Amount     string
	Result     string
	Status     string
	OtherCoins []otherCoinRow
}

func (s *Server) index(c *gin.Context) {
	s.renderPage(c, c.DefaultQuery("coin", s.defaultCoin), false)
}

func (s *Server) coinPage(c *gin.Context) {
	s.renderPage(c, c.Param("coinId"), true)
}

// renderPage always renders a usable page. Missing data, an unknown coin or
// a bad amount leave the result empty.
func (s *Server) renderPage(c *gin.Context, coinID string, fromPath bool) {
	log := s.log.With("ID", uuid.NewString())
	now := time.Now()
	defer func() {
		log.Debugw("Execution time", "renderPage", time.Since(now))
	}()

	status := s.storage.Status()
	view := projection.NewView(s.storage.GetCoins(), coinID, projection.DefaultAmount)
	data := pageData{
		Coins:      view.Coins(),
		SelectedID: coinID,
		Amount:     projection.DefaultAmount.String(),
		Status:     status.String(),
	}

	validAmount := true
	if raw, ok := c.GetQuery("amount"); ok {
		data.Amount = raw
		amount, err := projection.ParseAmount(raw)
		if err != nil {
			log.Infow("invalid amount when render page", "amount", raw, "err", err)
			validAmount = false
		} else {
			view.SetAmount(amount)
		}
	}

	httpStatus := http.StatusOK
	coin, found := view.Selected()
	if found {
		data.Selected = &coin
	} else if fromPath && status == common.LoadStatusReady {
		httpStatus = http.StatusNotFound
	}

	if validAmount {
		if total, ok := view.Projected(); ok {
			data.Result = util.FormatUSD(total)
		}
		for _, o := range view.OtherCoins() {
			data.OtherCoins = append(data.OtherCoins, otherCoinRow{
				Symbol: o.Coin.Symbol,
				Name:   o.Coin.Name,
				Result: util.FormatUSD(o.Projected),
			})
		}
	}

	c.HTML(httpStatus, pageTemplate, data)
}
