package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// requestID echoes a caller-supplied X-Request-ID or assigns a new one. The
// value is also written back onto the request so the access log can see it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
			c.Request.Header.Set(RequestIDHeader, id)
		}
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		return fmt.Sprintf("[llm-api] %s | %3d | %13v | %15s | %-7s %#v | %s\n",
			p.TimeStamp.Format(time.RFC3339),
			p.StatusCode,
			p.Latency,
			p.ClientIP,
			p.Method,
			p.Path,
			p.Request.Header.Get(RequestIDHeader),
		)
	})
}

// recovery answers a panic with the same JSON error body as any other
// translation failure.
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		abortWithDetail(c, http.StatusInternalServerError, fmt.Sprint(recovered))
	})
}
