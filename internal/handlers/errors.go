package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimoga/internal/service"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errInvalidLimit    = "invalid 'limit'; use a positive integer"
	errInvalidCoords   = "invalid 'lat'/'lon'; use decimal degrees"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps caller mistakes to 400 and everything else to 500.
func (h *Handler) respondServiceError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
}

func badBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
}
