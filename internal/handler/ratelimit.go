package handler

import (
	"net/http"

	"divination/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles requests per client IP.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
