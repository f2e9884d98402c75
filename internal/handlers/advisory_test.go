package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrimoga/internal/advisory"
	"agrimoga/internal/models"
	"agrimoga/internal/service"
)

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("health status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAdviseIrrigation(t *testing.T) {
	irr := &mockIrrigation{resp: service.IrrigationAdvice{
		Decision: advisory.Decision{Crop: advisory.Strawberry, Quantity: 480, Kind: advisory.KindNormal, Actionable: true},
	}}
	r := newTestRouter(&service.Service{Irrigation: irr})

	body := `{"crop":"strawberry","plot":{"mode":"area","area_m2":100},"weather":{"temperature_c":32},"record":true}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/irrigation/advice", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if irr.lastReq.Crop != "strawberry" || irr.lastReq.Plot.AreaM2 != 100 || !irr.lastReq.Record {
		t.Fatalf("request not forwarded: %+v", irr.lastReq)
	}
	if irr.lastReq.Weather == nil || irr.lastReq.Weather.TemperatureC != 32 {
		t.Fatalf("weather not forwarded: %+v", irr.lastReq.Weather)
	}
	var out service.IrrigationAdvice
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Decision.Quantity != 480 || out.Decision.Kind != advisory.KindNormal {
		t.Fatalf("unexpected advice: %+v", out.Decision)
	}
}

func TestAdviseIrrigation_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"malformed_body", `{"crop":`, nil, http.StatusBadRequest},
		{"validation", `{"crop":"kiwi"}`, fmt.Errorf("%w: unknown crop", service.ErrInvalidInput), http.StatusBadRequest},
		{"fault", `{"crop":"strawberry"}`, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			irr := &mockIrrigation{err: tc.err}
			r := newTestRouter(&service.Service{Irrigation: irr})
			w := doJSON(t, r, http.MethodPost, "/api/v1/irrigation/advice", tc.body)
			if w.Code != tc.want {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestLastAdvice(t *testing.T) {
	irr := &mockIrrigation{}
	r := newTestRouter(&service.Service{Irrigation: irr})
	if w := doJSON(t, r, http.MethodGet, "/api/v1/irrigation/last", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any advice, got %d", w.Code)
	}

	irr.last = &service.IrrigationAdvice{Location: "Agadir"}
	w := doJSON(t, r, http.MethodGet, "/api/v1/irrigation/last", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Agadir") {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAssessRisk(t *testing.T) {
	risk := &mockRisk{resp: service.RiskResult{Crop: advisory.Avocado, Tier: advisory.TierHigh, Badge: true}}
	r := newTestRouter(&service.Service{Risk: risk})

	w := doJSON(t, r, http.MethodPost, "/api/v1/diseases/risk", `{"crop":"avocado","lang":"fr"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if risk.lastReq.Crop != "avocado" || risk.lastReq.Lang != "fr" || risk.lastReq.Weather != nil {
		t.Fatalf("unexpected request: %+v", risk.lastReq)
	}
	var out service.RiskResult
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Tier != advisory.TierHigh || !out.Badge {
		t.Fatalf("unexpected result: %+v", out)
	}

	risk.err = fmt.Errorf("%w: no weather", service.ErrInvalidInput)
	if w := doJSON(t, r, http.MethodPost, "/api/v1/diseases/risk", `{"crop":"avocado"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLatestRisk(t *testing.T) {
	risk := &mockRisk{latest: models.RiskSnapshot{Score: 2, Level: "high", Crop: "avocado"}}
	r := newTestRouter(&service.Service{Risk: risk})
	w := doJSON(t, r, http.MethodGet, "/api/v1/diseases/risk/latest", "")
	var snap models.RiskSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || snap.Level != "high" || snap.Score != 2 {
		t.Fatalf("status=%d snapshot=%+v", w.Code, snap)
	}
}

func TestPlanFertilization(t *testing.T) {
	fert := &mockFertilization{resp: service.FertilizationResult{Crop: advisory.Strawberry, SplitDays: 7}}
	r := newTestRouter(&service.Service{Fertilization: fert})

	w := doJSON(t, r, http.MethodPost, "/api/v1/fertilization/plan", `{"crop":"strawberry","dose_count":3,"start":"2024-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if fert.lastReq.DoseCount == nil || *fert.lastReq.DoseCount != 3 || fert.lastReq.Start != "2024-03-01" {
		t.Fatalf("unexpected request: %+v", fert.lastReq)
	}

	fert.err = fmt.Errorf("plan: %w", advisory.ErrInvalidDoseCount)
	if w := doJSON(t, r, http.MethodPost, "/api/v1/fertilization/plan", `{"crop":"strawberry","dose_count":0}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero doses, got %d", w.Code)
	}
}

func TestBreakEven(t *testing.T) {
	pricing := &mockPricing{resp: service.PricingResult{Crop: advisory.Strawberry, ShareText: "x"}}
	r := newTestRouter(&service.Service{Pricing: pricing})

	body := `{"crop":"strawberry","yield_kg":100,"waste_kg":10,"costs":{"labor":300}}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/prices/breakeven", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if pricing.lastReq.YieldKg != 100 || pricing.lastReq.WasteKg != 10 || pricing.lastReq.PricePerKg != nil {
		t.Fatalf("unexpected request: %+v", pricing.lastReq)
	}

	pricing.err = errors.New("boom")
	w = doJSON(t, r, http.MethodPost, "/api/v1/prices/breakeven", body)
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "failed to compute break-even") {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}
