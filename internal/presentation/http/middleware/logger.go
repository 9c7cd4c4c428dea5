package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("http")

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// LoggerMiddleware tags every request with an ID and logs it once finished
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		short := requestID
		if len(short) > 8 {
			short = short[:8]
		}

		status := c.Writer.Status()
		line := "[%s] %s | %d | %v | %s | %s"
		args := []interface{}{short, c.Request.Method, status, time.Since(start), c.ClientIP(), path}
		switch {
		case status >= 500:
			log.Errorf(line, args...)
		case status >= 400:
			log.Warningf(line, args...)
		default:
			log.Infof(line, args...)
		}

		for _, e := range c.Errors {
			log.Errorf("[%s] Error: %v", short, e.Err)
		}
	}
}
