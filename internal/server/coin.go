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

func (s *Server) listCoins(c *gin.Context) {
	coins := s.storage.GetCoins()
	c.JSON(http.StatusOK, gin.H{
		"coins":      coins,
		"status":     s.storage.Status(),
		"total":      len(coins),
		"updated_at": s.storage.UpdatedAt(),
	})
}

func (s *Server) getCoin(c *gin.Context) {
	coin, ok := s.storage.GetCoin(c.Param("coinId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrCoinNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, coin)
}

type GetProjectionRequest struct {
	Coin   string `form:"coin" binding:"required"`
	Amount string `form:"amount"`
}

type GetProjectionResponse struct {
	Coin            *common.Coin           `json:"coin"`
	Amount          string                 `json:"amount"`
	ProjectedAmount *int64                 `json:"projected_amount"`
	Formatted       string                 `json:"formatted"`
	OtherCoins      []projection.Candidate `json:"other_coins"`
	Status          common.LoadStatus      `json:"status"`
}

func (s *Server) getProjection(c *gin.Context) {
	log := s.log.With("ID", uuid.NewString())
	now := time.Now()
	defer func() {
		log.Debugw("Execution time", "getProjection", time.Since(now))
	}()

	var request GetProjectionRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		log.Errorw("invalid request when get projection", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidProjectionRequest.Error()})
		return
	}

	amount := projection.DefaultAmount
	if _, ok := c.GetQuery("amount"); ok {
		a, err := projection.ParseAmount(request.Amount)
		if err != nil {
			log.Errorw("invalid amount when get projection", "amount", request.Amount, "err", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidAmount.Error()})
			return
		}
		amount = a
	}

	status := s.storage.Status()
	view := projection.NewView(s.storage.GetCoins(), request.Coin, amount)
	res := GetProjectionResponse{
		Amount:     amount.String(),
		OtherCoins: view.OtherCoins(),
		Status:     status,
	}

	coin, found := view.Selected()
	if !found && status == common.LoadStatusReady {
		log.Infow("coin not found when get projection", "coin", request.Coin)
		c.JSON(http.StatusNotFound, gin.H{"error": ErrCoinNotFound.Error()})
		return
	}
	if found {
		res.Coin = &coin
	}
	if total, ok := view.Projected(); ok {
		res.ProjectedAmount = &total
		res.Formatted = util.FormatUSD(total)
	}

	c.JSON(http.StatusOK, res)
}
