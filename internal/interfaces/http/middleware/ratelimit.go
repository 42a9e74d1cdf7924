package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rebanho/internal/infrastructure/ratelimit"
	"rebanho/internal/shared/constants"
	"rebanho/internal/shared/logger"
	"rebanho/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// ByClientIP throttles unauthenticated endpoints per source address. Limiter
// failures let the request through; throttling is best effort and must not
// take the endpoint down with redis.
func (m *RateLimitMiddleware) ByClientIP(scope string, limit ratelimit.Limit) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := m.limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ByUser throttles authenticated endpoints per caller. Must run after
// RequireAuth so the user ID is in the request context.
func (m *RateLimitMiddleware) ByUser(scope string, limit ratelimit.Limit) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(constants.ContextKeyUserID)
		if userID == 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%d", scope, userID)

		allowed, err := m.limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
