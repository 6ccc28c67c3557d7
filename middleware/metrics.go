package middleware

import (
	"time"

	"github.com/ariebrainware/inet-clinic/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency keyed by the matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.IncActiveConnections()
		defer m.DecActiveConnections()

		c.Next()

		m.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
