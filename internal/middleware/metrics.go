package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/procurio/procure_backend/pkg/metrics"
)

// HTTPMetrics creates a Gin middleware that records request counts and
// latencies. The route label uses the matched route template rather than the
// raw path to keep cardinality bounded.
func HTTPMetrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.ObserveRequest(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
