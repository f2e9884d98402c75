package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// metricsMiddleware records request count and latency per route template.
func (h *Handler) metricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	endpoint := c.FullPath()
	if endpoint == "" {
		endpoint = "unmatched"
	}
	h.metrics.RecordAPIRequest(endpoint, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
}
