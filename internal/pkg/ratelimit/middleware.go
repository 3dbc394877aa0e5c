package ratelimit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/odontoforense/api-go/internal/pkg/response"
)

// Middleware limits requests per client IP. It guards the login endpoint
// against credential brute force; everything else stays unthrottled.
func Middleware(limiter *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			reset := limiter.ResetTime(key)
			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", reset.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(int(time.Until(reset).Seconds())+1))

			response.TooManyRequests(c, "Muitas tentativas. Tente novamente mais tarde.")
			c.Abort()
			return
		}

		c.Next()
	}
}
