package middleware

import (
	"strconv"
	"time"

	"tractus/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight gauge by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.IncInFlight()
		defer m.DecInFlight()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
