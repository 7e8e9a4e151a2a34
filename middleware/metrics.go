package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RamonMR95/auto-api/metrics"
)

// MetricsMiddleware counts requests per method, route template and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
