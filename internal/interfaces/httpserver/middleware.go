package httpserver

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mediavault/catalog-api/internal/infrastructure/metrics"
)

// requestMetrics records a counter and a latency observation per request,
// labelled by route template rather than the raw path.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
