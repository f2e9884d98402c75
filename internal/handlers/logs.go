package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"agrimoga/internal/export"
	"agrimoga/internal/service"
)

const exportNameLayout = "20060102-150405"

// parseLimit reads ?limit; 0 means the service default.
func parseLimit(c *gin.Context) (int, bool) {
	qs := c.Query("limit")
	if qs == "" {
		return 0, true
	}
	n, err := strconv.Atoi(qs)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// @Summary      List advisory log
// @Description  Recorded irrigation decisions, newest first. The log keeps at most the configured cap.
// @Tags         logs
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries"  example(50)
// @Success      200    {object}  map[string]interface{}  "count, entries"
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
		return
	}
	entries, err := h.services.AdviceLog.ListAdvice(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load logs", "logs_list_failed", err, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// @Summary      Export logs
// @Description  Advisory log and harvest ledger as an XLSX workbook.
// @Tags         logs
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/logs/export [get]
func (h *Handler) exportLogs(c *gin.Context) {
	// buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.services.AdviceLog.ExportLogs(c.Request.Context(), &buf); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to export logs", "logs_export_failed", err)
		return
	}
	name := "agrimoga-" + time.Now().UTC().Format(exportNameLayout) + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// @Summary      Harvest ledger
// @Tags         harvest
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries"
// @Success      200    {object}  service.HarvestLedger
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/harvest [get]
func (h *Handler) getHarvest(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
		return
	}
	ledger, err := h.services.Harvest.HarvestLedger(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load harvest", "harvest_list_failed", err, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// @Summary      Record harvest
// @Tags         harvest
// @Accept       json
// @Produce      json
// @Param        body  body      service.HarvestRequest  true  "Picked lot"
// @Success      201   {object}  models.HarvestEntry
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/harvest [post]
func (h *Handler) addHarvest(c *gin.Context) {
	var req service.HarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	entry, err := h.services.Harvest.AddHarvest(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, "failed to record harvest", "harvest_add_failed", err, "crop", req.Crop)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
