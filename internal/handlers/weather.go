package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agrimoga/internal/i18n"
	"agrimoga/internal/service"
)

// optionalFloat parses an optional query value.
func optionalFloat(c *gin.Context, key string) (*float64, bool) {
	qs := c.Query(key)
	if qs == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(qs, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// @Summary      Current weather
// @Description  Forecast summary for a place name or coordinates. Provider failures return 200 with a warning and the last-known reading.
// @Tags         weather
// @Produce      json
// @Param        place  query     string  false  "Place name"  example(Agadir)
// @Param        lat    query     number  false  "Latitude"
// @Param        lon    query     number  false  "Longitude"
// @Param        lang   query     string  false  "Locale"  Enums(fr,ar,en)
// @Success      200    {object}  service.WeatherResult
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	lat, okLat := optionalFloat(c, "lat")
	lon, okLon := optionalFloat(c, "lon")
	if !okLat || !okLon {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCoords})
		return
	}
	q := service.WeatherQuery{
		Place: c.Query("place"),
		Lat:   lat,
		Lon:   lon,
		Lang:  c.Query("lang"),
	}
	out, err := h.services.Weather.CurrentWeather(c.Request.Context(), q)
	if err != nil {
		h.respondServiceError(c, "failed to load weather", "weather_get_failed", err, "place", q.Place)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Crop catalogue
// @Description  Crops with their demands, targets, price bands, zones and diseases in the requested locale.
// @Tags         crops
// @Produce      json
// @Param        lang  query     string  false  "Locale; defaults to the stored preference"  Enums(fr,ar,en)
// @Success      200   {object}  map[string]interface{}  "lang, dir, crops"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/crops [get]
func (h *Handler) listCrops(c *gin.Context) {
	l := h.services.Prefs.Lang(c.Request.Context())
	if qs := c.Query("lang"); qs != "" {
		parsed, err := i18n.ParseLocale(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		l = parsed
	}
	c.JSON(http.StatusOK, gin.H{
		"lang":  l,
		"dir":   l.Direction(),
		"crops": h.services.Crops.Crops(l),
	})
}
