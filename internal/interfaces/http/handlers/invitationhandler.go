package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	invitationUsecases "rebanho/internal/application/invitation/usecases"
	"rebanho/internal/shared/constants"
	"rebanho/internal/shared/logger"
	"rebanho/internal/shared/utils"
)

type InvitationHandler struct {
	createInvitationUC createInvitationUseCase
	acceptInvitationUC acceptInvitationUseCase
	logger             logger.Interface
}

func NewInvitationHandler(
	createInvitationUC createInvitationUseCase,
	acceptInvitationUC acceptInvitationUseCase,
	logger logger.Interface,
) *InvitationHandler {
	return &InvitationHandler{
		createInvitationUC: createInvitationUC,
		acceptInvitationUC: acceptInvitationUC,
		logger:             logger,
	}
}

type CreateInvitationRequest struct {
	Email    string `json:"email" binding:"required,email"`
	TenantID uint   `json:"tenant_id" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type InvitationResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	TenantID  uint   `json:"tenant_id"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token" binding:"required"`
}

type RoleAssignmentResponse struct {
	TenantID uint   `json:"tenant_id"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// CreateInvitation creates a pending invitation for a tenant member.
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	inv, err := h.createInvitationUC.Execute(c.Request.Context(), invitationUsecases.CreateInvitationCommand{
		InviterUserID: userID.(uint),
		Email:         req.Email,
		TenantID:      req.TenantID,
		Role:          req.Role,
	})
	if err != nil {
		h.logger.Warnw("failed to create invitation",
			"error", err,
			"inviter_id", userID,
			"tenant_id", req.TenantID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := InvitationResponse{
		Token:     inv.Token(),
		Email:     inv.Email(),
		TenantID:  inv.TenantID(),
		Role:      inv.Role().String(),
		Status:    string(inv.Status()),
		ExpiresAt: inv.ExpiresAt().Format(time.RFC3339),
	}

	utils.CreatedResponse(c, response, "invitation created successfully")
}

// AcceptInvitation redeems an invitation token for the authenticated user.
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	userEmail, _ := c.Get(constants.ContextKeyUserEmail)
	email, _ := userEmail.(string)

	var req AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	assignment, err := h.acceptInvitationUC.Execute(c.Request.Context(), invitationUsecases.AcceptInvitationCommand{
		UserID:    userID.(uint),
		UserEmail: email,
		Token:     req.Token,
	})
	if err != nil {
		h.logger.Warnw("failed to accept invitation", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := RoleAssignmentResponse{
		TenantID: assignment.TenantID(),
		Role:     assignment.Role().String(),
		Active:   assignment.IsActive(),
	}

	utils.SuccessResponse(c, http.StatusOK, "invitation accepted successfully", response)
}
