package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	billingUsecases "rebanho/internal/application/billing/usecases"
	"rebanho/internal/shared/constants"
	"rebanho/internal/shared/logger"
	"rebanho/internal/shared/utils"
)

type BillingHandler struct {
	getSubscriptionUC getSubscriptionUseCase
	logger            logger.Interface
}

func NewBillingHandler(getSubscriptionUC getSubscriptionUseCase, logger logger.Interface) *BillingHandler {
	return &BillingHandler{
		getSubscriptionUC: getSubscriptionUC,
		logger:            logger,
	}
}

type SubscriptionResponse struct {
	Tier               string `json:"tier"`
	Status             string `json:"status"`
	Active             bool   `json:"active"`
	CurrentPeriodStart string `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   string `json:"current_period_end,omitempty"`
}

// GetSubscription returns the authenticated user's subscription, falling back
// to the implicit free tier when no billing row exists.
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	sub, err := h.getSubscriptionUC.Execute(c.Request.Context(), billingUsecases.GetSubscriptionQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		h.logger.Errorw("failed to get subscription", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := SubscriptionResponse{
		Tier:   sub.Tier().String(),
		Status: sub.Status().String(),
		Active: sub.IsActive(),
	}
	if !sub.CurrentPeriodStart().IsZero() {
		response.CurrentPeriodStart = sub.CurrentPeriodStart().Format(time.RFC3339)
	}
	if !sub.CurrentPeriodEnd().IsZero() {
		response.CurrentPeriodEnd = sub.CurrentPeriodEnd().Format(time.RFC3339)
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription retrieved successfully", response)
}
