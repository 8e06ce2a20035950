package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/metrics"
	"github.com/linskybing/property-portal/pkg/ratelimit"
	"github.com/linskybing/property-portal/pkg/response"
	"go.uber.org/zap"
)

// RateLimit applies a fixed window per client IP. Limiter failures let the
// request through.
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		res, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Error("rate limiter failed", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			retry := int(math.Ceil(time.Until(res.ResetAt).Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			metrics.RateLimitedTotal.Inc()
			logger.Warn("rate limit exceeded", zap.String("key", key), zap.Int("limit", res.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{
				Error: "Too many requests, please try again later.",
			})
			return
		}
		c.Next()
	}
}
