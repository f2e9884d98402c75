package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimoga/internal/service"
)

// @Summary      Irrigation advice
// @Description  Computes the daily irrigation volume for a crop and plot. Without a weather block the last-known forecast is used. With record=true the decision is appended to the advisory log.
// @Tags         irrigation
// @Accept       json
// @Produce      json
// @Param        body  body      service.IrrigationRequest  true  "Crop, plot and optional weather"
// @Success      200   {object}  service.IrrigationAdvice
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/irrigation/advice [post]
func (h *Handler) adviseIrrigation(c *gin.Context) {
	var req service.IrrigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	out, err := h.services.Irrigation.Advise(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, "failed to compute irrigation advice", "irrigation_advise_failed", err, "crop", req.Crop)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Last irrigation advice
// @Tags         irrigation
// @Produce      json
// @Success      200  {object}  service.IrrigationAdvice
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/irrigation/last [get]
func (h *Handler) lastAdvice(c *gin.Context) {
	out, ok := h.services.Irrigation.LastAdvice(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no advice computed yet"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Disease risk
// @Description  Scores every catalogued disease of the crop against the weather and returns the overall tier with hints.
// @Tags         diseases
// @Accept       json
// @Produce      json
// @Param        body  body      service.RiskRequest  true  "Crop and optional weather"
// @Success      200   {object}  service.RiskResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/diseases/risk [post]
func (h *Handler) assessRisk(c *gin.Context) {
	var req service.RiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	out, err := h.services.Risk.AssessRisk(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, "failed to assess disease risk", "risk_assess_failed", err, "crop", req.Crop)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Latest risk snapshot
// @Tags         diseases
// @Produce      json
// @Success      200  {object}  models.RiskSnapshot
// @Router       /api/v1/diseases/risk/latest [get]
func (h *Handler) latestRisk(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Risk.LatestRisk(c.Request.Context()))
}

// @Summary      Fertilization plan
// @Description  Splits a seasonal N-P-K target into equal doses and schedules them.
// @Tags         fertilization
// @Accept       json
// @Produce      json
// @Param        body  body      service.FertilizationRequest  true  "Crop, target and dose count"
// @Success      200   {object}  service.FertilizationResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/fertilization/plan [post]
func (h *Handler) planFertilization(c *gin.Context) {
	var req service.FertilizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	out, err := h.services.Fertilization.PlanFertilization(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, "failed to plan fertilization", "fertilization_plan_failed", err, "crop", req.Crop)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Break-even price
// @Description  Computes cost per kg, the break-even price and the min/avg/max market scenarios.
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        body  body      service.PricingRequest  true  "Lot, costs and optional price"
// @Success      200   {object}  service.PricingResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/prices/breakeven [post]
func (h *Handler) breakEven(c *gin.Context) {
	var req service.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	out, err := h.services.Pricing.BreakEven(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, "failed to compute break-even", "pricing_breakeven_failed", err, "crop", req.Crop)
		return
	}
	c.JSON(http.StatusOK, out)
}
