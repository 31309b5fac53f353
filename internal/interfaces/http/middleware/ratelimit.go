package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/infrastructure/ratelimit"
	"fieldops/internal/shared/utils"
)

// RateLimit throttles mutating workshop endpoints per authenticated user,
// falling back to the client IP for unauthenticated calls. A limiter
// failure never blocks traffic.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("user:%d", UserID(c))
		if UserID(c) == 0 {
			key = "ip:" + c.ClientIP()
		}

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
