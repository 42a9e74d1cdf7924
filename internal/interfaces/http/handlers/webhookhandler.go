package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	billingUsecases "rebanho/internal/application/billing/usecases"
	"rebanho/internal/shared/logger"
	"rebanho/internal/shared/utils"
)

const signatureHeader = "Stripe-Signature"

type WebhookHandler struct {
	processWebhookUC processWebhookEventUseCase
	logger           logger.Interface
}

func NewWebhookHandler(processWebhookUC processWebhookEventUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		processWebhookUC: processWebhookUC,
		logger:           logger,
	}
}

// HandleBillingWebhook receives provider webhook deliveries. The body must
// stay raw for signature verification; any JSON re-encoding would break it.
func (h *WebhookHandler) HandleBillingWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		h.logger.Errorw("failed to read webhook body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	cmd := billingUsecases.ProcessWebhookEventCommand{
		Payload:         payload,
		SignatureHeader: c.GetHeader(signatureHeader),
	}

	if err := h.processWebhookUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("webhook processing failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	// the provider only needs a 2xx acknowledgment
	c.JSON(http.StatusOK, gin.H{"received": true})
}
