package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
	"agrimoga/internal/service"
)

// ---- Service Mocks ----

type mockIrrigation struct {
	resp    service.IrrigationAdvice
	err     error
	last    *service.IrrigationAdvice
	lastReq service.IrrigationRequest
	calls   int
}

func (m *mockIrrigation) Advise(ctx context.Context, req service.IrrigationRequest) (service.IrrigationAdvice, error) {
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}
func (m *mockIrrigation) LastAdvice(ctx context.Context) (service.IrrigationAdvice, bool) {
	if m.last == nil {
		return service.IrrigationAdvice{}, false
	}
	return *m.last, true
}

type mockRisk struct {
	resp    service.RiskResult
	err     error
	latest  models.RiskSnapshot
	lastReq service.RiskRequest
}

func (m *mockRisk) AssessRisk(ctx context.Context, req service.RiskRequest) (service.RiskResult, error) {
	m.lastReq = req
	return m.resp, m.err
}
func (m *mockRisk) LatestRisk(ctx context.Context) models.RiskSnapshot { return m.latest }

type mockFertilization struct {
	resp    service.FertilizationResult
	err     error
	lastReq service.FertilizationRequest
}

func (m *mockFertilization) PlanFertilization(ctx context.Context, req service.FertilizationRequest) (service.FertilizationResult, error) {
	m.lastReq = req
	return m.resp, m.err
}

type mockPricing struct {
	resp    service.PricingResult
	err     error
	lastReq service.PricingRequest
}

func (m *mockPricing) BreakEven(ctx context.Context, req service.PricingRequest) (service.PricingResult, error) {
	m.lastReq = req
	return m.resp, m.err
}

type mockHarvest struct {
	entry     models.HarvestEntry
	addErr    error
	ledger    service.HarvestLedger
	listErr   error
	lastReq   service.HarvestRequest
	lastLimit int
}

func (m *mockHarvest) AddHarvest(ctx context.Context, req service.HarvestRequest) (models.HarvestEntry, error) {
	m.lastReq = req
	return m.entry, m.addErr
}
func (m *mockHarvest) HarvestLedger(ctx context.Context, limit int) (service.HarvestLedger, error) {
	m.lastLimit = limit
	return m.ledger, m.listErr
}

type mockAdviceLog struct {
	entries   []models.AdvisoryLogEntry
	listErr   error
	export    []byte
	exportErr error
	lastLimit int
}

func (m *mockAdviceLog) ListAdvice(ctx context.Context, limit int) ([]models.AdvisoryLogEntry, error) {
	m.lastLimit = limit
	return m.entries, m.listErr
}
func (m *mockAdviceLog) ExportLogs(ctx context.Context, w io.Writer) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	_, err := w.Write(m.export)
	return err
}

type mockWeather struct {
	resp      service.WeatherResult
	err       error
	lastQuery service.WeatherQuery
	calls     int
}

func (m *mockWeather) CurrentWeather(ctx context.Context, q service.WeatherQuery) (service.WeatherResult, error) {
	m.calls++
	m.lastQuery = q
	return m.resp, m.err
}

type mockForms struct {
	saved   map[string]json.RawMessage
	putErr  error
	lastKey string
}

func (m *mockForms) GetForm(ctx context.Context, key string) json.RawMessage {
	m.lastKey = key
	if raw, ok := m.saved[key]; ok {
		return raw
	}
	return json.RawMessage(`{}`)
}
func (m *mockForms) PutForm(ctx context.Context, key string, raw json.RawMessage) error {
	m.lastKey = key
	if m.putErr != nil {
		return m.putErr
	}
	if m.saved == nil {
		m.saved = map[string]json.RawMessage{}
	}
	m.saved[key] = raw
	return nil
}

type mockPrefs struct {
	lang   i18n.Locale
	setErr error
}

func (m *mockPrefs) Lang(ctx context.Context) i18n.Locale {
	if m.lang == "" {
		return i18n.DefaultLocale
	}
	return m.lang
}
func (m *mockPrefs) SetLang(ctx context.Context, raw string) (i18n.Locale, error) {
	if m.setErr != nil {
		return "", m.setErr
	}
	l, err := i18n.ParseLocale(raw)
	if err != nil {
		return "", err
	}
	m.lang = l
	return l, nil
}

type mockCrops struct {
	views    []service.CropView
	lastLang i18n.Locale
}

func (m *mockCrops) Crops(l i18n.Locale) []service.CropView {
	m.lastLang = l
	return m.views
}

// ---- Test helpers ----

func newTestRouter(s *service.Service) http.Handler {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, nil, nil)
	return h.InitRoutes()
}
