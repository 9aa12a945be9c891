package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"certhub/internal/infrastructure/ratelimit"
	"certhub/internal/shared/logger"
	"certhub/internal/shared/utils"
)

// RateLimit returns a middleware enforcing a per-IP fixed window for one
// action. When the limiter backend is unavailable the request passes through
// so an infrastructure outage does not take the public surface down with it.
func RateLimit(limiter ratelimit.RateLimiter, action string, maxAttempts int, window time.Duration, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.CheckAndRecord(c.Request.Context(), c.ClientIP(), action, maxAttempts, window)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"action", action,
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(result.RetryAfter.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
