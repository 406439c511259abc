package middleware

import (
	"net/http"
	"strconv"

	"bizlist/internal/redis"
	"bizlist/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware limits API requests per caller IP. On a limiter
// backend failure the request is allowed through; throttling is protective,
// not load-bearing.
func RateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewDetailError("rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}
