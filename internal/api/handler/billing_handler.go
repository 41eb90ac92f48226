package handler

import (
	"Dresscode/internal/api/dto"
	"Dresscode/internal/pkg/response"
	"Dresscode/internal/pkg/util"
	"Dresscode/internal/service"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingSvc service.BillingService
}

func NewBillingHandler(billingSvc service.BillingService) *BillingHandler {
	return &BillingHandler{
		billingSvc: billingSvc,
	}
}

// CreateIntent 创建订阅支付意向
func (s *BillingHandler) CreateIntent(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var intentDTO dto.BillingIntentDTO
	err := c.ShouldBind(&intentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.billingSvc.CreateIntent(c.Request.Context(), userID, &intentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ActivateSubscription 支付完成后回写订阅状态
func (s *BillingHandler) ActivateSubscription(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var subDTO dto.SubscriptionDTO
	err := c.ShouldBind(&subDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&subDTO); err != nil {
		response.Error(c, err)
		return
	}

	err = s.billingSvc.ActivateSubscription(c.Request.Context(), userID, &subDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *BillingHandler) GetSubscription(c *gin.Context) {
	userID := c.GetUint64("user_id")

	subDTO, err := s.billingSvc.GetSubscription(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subDTO)
}
