// Package http wires repositories, use cases and handlers into the gin
// engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingUsecases "rebanho/internal/application/billing/usecases"
	invitationUsecases "rebanho/internal/application/invitation/usecases"
	tenancyUsecases "rebanho/internal/application/tenancy/usecases"
	"rebanho/internal/infrastructure/auth"
	infraBilling "rebanho/internal/infrastructure/billing"
	"rebanho/internal/infrastructure/cache"
	"rebanho/internal/infrastructure/config"
	"rebanho/internal/infrastructure/email"
	"rebanho/internal/infrastructure/ratelimit"
	"rebanho/internal/infrastructure/repository"
	"rebanho/internal/interfaces/http/handlers"
	"rebanho/internal/interfaces/http/middleware"
	"rebanho/internal/shared/db"
	"rebanho/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	webhookHandler    *handlers.WebhookHandler
	billingHandler    *handlers.BillingHandler
	tenancyHandler    *handlers.TenancyHandler
	invitationHandler *handlers.InvitationHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimit         *middleware.RateLimitMiddleware
}

// NewRouter builds the full dependency graph for the HTTP surface.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	// repositories
	webhookEventRepo := repository.NewWebhookEventRepository(database)
	subscriptionRepo := repository.NewSubscriptionRepository(database)
	userRepo := repository.NewUserRepository(database)
	tenantRepo := repository.NewTenantRepository(database)
	assignmentRepo := repository.NewRoleAssignmentRepository(database)
	invitationRepo := repository.NewInvitationRepository(database)

	// infrastructure services
	gateway := infraBilling.NewStripeGateway(&cfg.Billing)
	activeTenantStore := cache.NewActiveTenantStore(redisClient)
	txMgr := db.NewTransactionManager(database)
	mailer := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	limiter := ratelimit.NewRedisRateLimiter(redisClient)

	// use cases
	processWebhookUC := billingUsecases.NewProcessWebhookEventUseCase(
		gateway, webhookEventRepo, subscriptionRepo, userRepo, log)
	getSubscriptionUC := billingUsecases.NewGetSubscriptionUseCase(subscriptionRepo, log)
	resolveContextUC := tenancyUsecases.NewResolveTenantContextUseCase(
		assignmentRepo, tenantRepo, activeTenantStore, log)
	switchTenantUC := tenancyUsecases.NewSwitchActiveTenantUseCase(
		assignmentRepo, tenantRepo, activeTenantStore, log)
	createInvitationUC := invitationUsecases.NewCreateInvitationUseCase(
		invitationRepo, assignmentRepo, tenantRepo, mailer,
		time.Duration(cfg.Invitation.ExpiresHours)*time.Hour, log)
	acceptInvitationUC := invitationUsecases.NewAcceptInvitationUseCase(
		invitationRepo, assignmentRepo, txMgr, log)

	return &Router{
		engine:            gin.New(),
		cfg:               cfg,
		logger:            log,
		webhookHandler:    handlers.NewWebhookHandler(processWebhookUC, log),
		billingHandler:    handlers.NewBillingHandler(getSubscriptionUC, log),
		tenancyHandler:    handlers.NewTenancyHandler(resolveContextUC, switchTenantUC, log),
		invitationHandler: handlers.NewInvitationHandler(createInvitationUC, acceptInvitationUC, log),
		authMiddleware:    middleware.NewAuthMiddleware(jwtService, log),
		rateLimit:         middleware.NewRateLimitMiddleware(limiter, log),
	}
}

// SetupRoutes registers middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	// webhook deliveries authenticate via signature, not bearer token
	api.POST("/webhooks/billing",
		r.rateLimit.ByClientIP("webhook", ratelimit.Limit{Requests: 120, Window: time.Minute}),
		r.webhookHandler.HandleBillingWebhook)

	authed := api.Group("")
	authed.Use(r.authMiddleware.RequireAuth())
	{
		authed.GET("/billing/subscription", r.billingHandler.GetSubscription)
		authed.GET("/tenancy/context", r.tenancyHandler.GetContext)
		authed.PUT("/tenancy/context/active-tenant", r.tenancyHandler.SwitchActiveTenant)
		authed.POST("/invitations",
			r.rateLimit.ByUser("invite", ratelimit.Limit{Requests: 30, Window: time.Hour}),
			r.invitationHandler.CreateInvitation)
		authed.POST("/invitations/accept", r.invitationHandler.AcceptInvitation)
	}
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
