package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/logger"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dbp_diagnostics_request_duration_seconds",
	Help:    "Latency of diagnostics endpoint requests",
	Buckets: prometheus.DefBuckets,
}, []string{"route", "status"})

// Observe logs every diagnostics request and records its latency.
// Requests that match no route are grouped under "unmatched".
func Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		requestDuration.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Observe(elapsed.Seconds())

		logger.Debug("Diagnostics request",
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", elapsed),
		)
	}
}

// Recover turns a panicking handler into a 500 and reports it
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			logger.Error(fmt.Errorf("diagnostics handler panicked: %v", r), zap.String("route", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}()
		c.Next()
	}
}
