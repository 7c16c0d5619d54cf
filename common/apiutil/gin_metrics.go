package apiutil

import (
	"strconv"
	"time"

	"github.com/Aidin1998/hello-service/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// unmatchedPath labels requests that hit no route, keeping label cardinality bounded
const unmatchedPath = "unmatched"

// MetricsMiddleware records HTTP request counts and durations for Prometheus
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		// Use the route template (e.g., /api/v1/hello/:name)
		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	}
}
