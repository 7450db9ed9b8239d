package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID assigns a correlation id to every request and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// AccessLog writes one structured line per request.
func AccessLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.InfoContext(c.Request.Context(), "request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

// TokenGate guards the /api namespace with the shared-secret header token.
// An exact string match is the only check; mismatches get the usual envelope
// on HTTP 200, which the UI relies on.
func TokenGate(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("token") != apiToken {
			c.AbortWithStatusJSON(http.StatusOK, Format("Not Authorized", nil))
			return
		}
		c.Next()
	}
}
