package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/google/uuid"

	"go-currency-converter/metrics"
)

const requestIDKey = "request_id"

// RequestID tags every request with a correlation id that also shows
// up in the diagnostic log
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// Logger logs one line per request
func Logger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Log(
			"msg", "http request",
			"request_id", c.GetString(requestIDKey),
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"took", time.Since(begin),
			"client_ip", c.ClientIP(),
		)
	}
}

// Instrument records request counts and durations. Scrapes of
// /metrics itself are not counted.
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/metrics" {
			c.Next()
			return
		}

		begin := time.Now()
		c.Next()

		method := c.Request.Method
		m.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(begin).Seconds())
		m.HTTPRequestsTotal.WithLabelValues(path, method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
