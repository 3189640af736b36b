package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"autoscribe/internal/app/metrics"
)

// Metrics records request counts and latency by route pattern
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		pattern := c.FullPath()
		if pattern == "" {
			pattern = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, pattern, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, pattern).Observe(time.Since(start).Seconds())
	}
}
