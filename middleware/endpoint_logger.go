package middleware

import (
	"time"

	"github.com/ariebrainware/inet-clinic/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger logs each HTTP request through rl. RequestID should run
// before it so the entry carries the request id.
func EndpointCallLogger(rl *util.RequestLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		details := map[string]interface{}{
			"route": c.FullPath(),
			"query": c.Request.URL.RawQuery,
		}
		if len(c.Errors) > 0 {
			details["errors"] = c.Errors.Errors()
		}

		rl.Log(c.Request.Context(), util.RequestEvent{
			RequestID: c.GetString(util.RequestIDKey),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			Duration:  time.Since(start),
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Details:   details,
		})
	}
}
