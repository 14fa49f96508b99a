package middleware

import (
	"fmt"
	"time"

	"javaterra/internal/utils"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request, tagged with the request id.
// Query strings are left out since search terms are passenger names.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		msg := fmt.Sprintf("method=%s path=%s status=%d bytes=%d latency_ms=%.3f ip=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.ClientIP(),
		)
		if admin := AdminSubject(c); admin != "" {
			msg += " admin=" + admin
		}
		if len(c.Errors) > 0 {
			msg += " errors=" + c.Errors.String()
		}
		utils.LogEvent(GetRequestID(c), "http", "request", msg)
	}
}
