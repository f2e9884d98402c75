package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/service"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
}

// NewHandler constructs a new HTTP handler with dependencies. A nil gatherer
// leaves /metrics unregistered.
func NewHandler(services *service.Service, log *logger.Logger, m *metrics.Collector, gatherer prometheus.Gatherer) *Handler {
	return &Handler{services: services, log: log, metrics: m, gatherer: gatherer}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	if h.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	h.registerAPIRoutes(router)

	// risk tier push, same port
	router.GET("/ws/risk", h.wsRisk)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.metricsMiddleware)
	{
		api.GET("/crops", h.listCrops)
		api.GET("/weather", h.getWeather)

		h.registerAdvisoryRoutes(api)
		h.registerLogRoutes(api)
		h.registerStateRoutes(api)
	}
}

func (h *Handler) registerAdvisoryRoutes(api *gin.RouterGroup) {
	irrigation := api.Group("/irrigation")
	{
		irrigation.POST("/advice", h.adviseIrrigation)
		irrigation.GET("/last", h.lastAdvice)
	}
	diseases := api.Group("/diseases")
	{
		diseases.POST("/risk", h.assessRisk)
		diseases.GET("/risk/latest", h.latestRisk)
	}
	api.POST("/fertilization/plan", h.planFertilization)
	api.POST("/prices/breakeven", h.breakEven)
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
		logs.GET("/export", h.exportLogs)
	}
	harvest := api.Group("/harvest")
	{
		harvest.GET("", h.getHarvest)
		harvest.POST("", h.addHarvest)
	}
}

func (h *Handler) registerStateRoutes(api *gin.RouterGroup) {
	forms := api.Group("/forms")
	{
		forms.GET("/:key", h.getForm)
		forms.PUT("/:key", h.putForm)
	}
	prefs := api.Group("/prefs")
	{
		prefs.GET("/lang", h.getLang)
		prefs.PUT("/lang", h.setLang)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
