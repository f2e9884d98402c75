package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"agrimoga/internal/i18n"
	"agrimoga/internal/metrics"
	"agrimoga/internal/service"
)

func TestMetricsMiddleware_ExposedOnMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.NewCollector("agrimoga", reg)
	s := &service.Service{Crops: &mockCrops{}, Prefs: &mockPrefs{lang: i18n.English}}
	r := NewHandler(s, nil, m, reg).InitRoutes()

	if w := doJSON(t, r, http.MethodGet, "/api/v1/crops", ""); w.Code != http.StatusOK {
		t.Fatalf("crops status=%d", w.Code)
	}
	_ = doJSON(t, r, http.MethodGet, "/api/v1/crops?lang=xx", "")

	w := doJSON(t, r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status=%d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`agrimoga_api_requests_total{endpoint="/api/v1/crops",method="GET",status="200"} 1`,
		`agrimoga_api_requests_total{endpoint="/api/v1/crops",method="GET",status="400"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in:\n%s", want, body)
		}
	}
}

func TestMetricsRoute_AbsentWithoutGatherer(t *testing.T) {
	r := newTestRouter(&service.Service{})
	if w := doJSON(t, r, http.MethodGet, "/metrics", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
