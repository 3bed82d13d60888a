package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/mapstl_api/internal/metrics"
)

// unmatchedRoute - метка для запросов без маршрута, чтобы не плодить серии по произвольным путям
const unmatchedRoute = "unmatched"

// Metrics считает запросы и их длительность по шаблону маршрута
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.HTTPActiveRequests.Inc()
		defer metrics.HTTPActiveRequests.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
