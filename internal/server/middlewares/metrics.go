package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unison/inventory-manager/internal/metrics"
)

// Metrics counts requests by matched route so path parameters do not explode
// label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
