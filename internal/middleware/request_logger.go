package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one line per request. Handlers put the failure cause
// under the "error" key; such requests are logged at warn, or error for 5xx.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		errMsg := c.GetString("error")

		level := logger.InfoLevel
		switch {
		case errMsg != "" && status >= 500:
			level = logger.ErrorLevel
		case errMsg != "":
			level = logger.WarnLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", status),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", c.GetString(requestIDKey)),
			logger.String("error", errMsg),
		)
	}
}
