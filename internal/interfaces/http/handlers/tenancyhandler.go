package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	tenancyUsecases "rebanho/internal/application/tenancy/usecases"
	"rebanho/internal/domain/tenancy"
	"rebanho/internal/shared/constants"
	"rebanho/internal/shared/logger"
	"rebanho/internal/shared/utils"
)

type TenancyHandler struct {
	resolveContextUC resolveTenantContextUseCase
	switchTenantUC   switchActiveTenantUseCase
	logger           logger.Interface
}

func NewTenancyHandler(
	resolveContextUC resolveTenantContextUseCase,
	switchTenantUC switchActiveTenantUseCase,
	logger logger.Interface,
) *TenancyHandler {
	return &TenancyHandler{
		resolveContextUC: resolveContextUC,
		switchTenantUC:   switchTenantUC,
		logger:           logger,
	}
}

type TenantResponse struct {
	ID        uint                   `json:"id"`
	Name      string                 `json:"name"`
	Category  string                 `json:"category,omitempty"`
	Plan      string                 `json:"plan,omitempty"`
	Limits    tenancy.ResourceLimits `json:"limits"`
	CreatedAt string                 `json:"created_at"`
}

type TenantContextResponse struct {
	HasAccess    bool                 `json:"has_access"`
	Role         string               `json:"role,omitempty"`
	ActiveTenant *TenantResponse      `json:"active_tenant,omitempty"`
	Tenants      []TenantResponse     `json:"tenants"`
	Capabilities tenancy.Capabilities `json:"capabilities"`
}

type SwitchActiveTenantRequest struct {
	TenantID uint `json:"tenant_id" binding:"required"`
}

// GetContext resolves the caller's tenant context: active assignment,
// accessible tenants, active tenant and capability flags.
func (h *TenancyHandler) GetContext(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.resolveContextUC.Execute(c.Request.Context(), tenancyUsecases.ResolveTenantContextQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		h.logger.Errorw("failed to resolve tenant context", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := TenantContextResponse{
		HasAccess:    result.HasAccess(),
		Tenants:      make([]TenantResponse, 0, len(result.Tenants)),
		Capabilities: result.Capabilities,
	}
	if result.Assignment != nil {
		response.Role = result.Assignment.Role().String()
	}
	if result.ActiveTenant != nil {
		tr := toTenantResponse(result.ActiveTenant)
		response.ActiveTenant = &tr
	}
	for _, tenant := range result.Tenants {
		response.Tenants = append(response.Tenants, toTenantResponse(tenant))
	}

	utils.SuccessResponse(c, http.StatusOK, "tenant context resolved successfully", response)
}

// SwitchActiveTenant records a new active-tenant choice for the caller.
func (h *TenancyHandler) SwitchActiveTenant(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req SwitchActiveTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	err := h.switchTenantUC.Execute(c.Request.Context(), tenancyUsecases.SwitchActiveTenantCommand{
		UserID:   userID.(uint),
		TenantID: req.TenantID,
	})
	if err != nil {
		h.logger.Warnw("failed to switch active tenant",
			"error", err,
			"user_id", userID,
			"tenant_id", req.TenantID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "active tenant switched successfully", nil)
}

func toTenantResponse(tenant *tenancy.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID(),
		Name:      tenant.Name(),
		Category:  tenant.Category(),
		Plan:      tenant.Plan(),
		Limits:    tenant.Limits(),
		CreatedAt: tenant.CreatedAt().Format(time.RFC3339),
	}
}
