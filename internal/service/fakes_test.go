package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/i18n"
	"agrimoga/internal/logger"
	"agrimoga/internal/models"
	"agrimoga/internal/repository"
	"agrimoga/internal/weather"
)

// ---- Test doubles ----

type memSnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemSnapshots() *memSnapshots { return &memSnapshots{data: map[string][]byte{}} }

func (m *memSnapshots) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (m *memSnapshots) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memSnapshots) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

type fakeAdviceLog struct {
	entries   []models.AdvisoryLogEntry
	gotCap    int
	gotLimit  int
	appendErr error
	listErr   error
}

func (f *fakeAdviceLog) Append(_ context.Context, e models.AdvisoryLogEntry, capacity int) error {
	f.gotCap = capacity
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append([]models.AdvisoryLogEntry{e}, f.entries...)
	return nil
}

func (f *fakeAdviceLog) List(_ context.Context, limit int) ([]models.AdvisoryLogEntry, error) {
	f.gotLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries[:min(limit, len(f.entries))], nil
}

type fakeHarvest struct {
	entries  []models.HarvestEntry
	gotCap   int
	gotLimit int
}

func (f *fakeHarvest) Append(_ context.Context, e models.HarvestEntry, capacity int) error {
	f.gotCap = capacity
	f.entries = append([]models.HarvestEntry{e}, f.entries...)
	return nil
}

func (f *fakeHarvest) List(_ context.Context, limit int) ([]models.HarvestEntry, error) {
	f.gotLimit = limit
	return f.entries[:min(limit, len(f.entries))], nil
}

func (f *fakeHarvest) Totals(context.Context) (models.HarvestTotals, error) {
	var t models.HarvestTotals
	for _, e := range f.entries {
		t.SumKg += e.QtyKg
		t.SumMAD += e.Total
	}
	return t, nil
}

type fakeWeatherClient struct {
	mu          sync.Mutex
	samples     []weather.Sample
	city        string
	forecastErr error
	place       weather.Place
	geocodeErr  error
	reverse     string
	forecasts   int
}

func (f *fakeWeatherClient) HasAPIKey() bool { return true }

func (f *fakeWeatherClient) Forecast(context.Context, float64, float64) ([]weather.Sample, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecasts++
	if f.forecastErr != nil {
		return nil, "", f.forecastErr
	}
	return f.samples, f.city, nil
}

func (f *fakeWeatherClient) Geocode(context.Context, string, i18n.Locale) (weather.Place, error) {
	return f.place, f.geocodeErr
}

func (f *fakeWeatherClient) ReverseGeocode(context.Context, float64, float64, i18n.Locale) string {
	return f.reverse
}

type fakePublisher struct {
	published []models.AdvisoryLogEntry
	err       error
}

func (p *fakePublisher) PublishDecision(_ context.Context, e models.AdvisoryLogEntry) error {
	p.published = append(p.published, e)
	return p.err
}

func (p *fakePublisher) Close() {}

// ---- Fixture ----

type fixture struct {
	svc       *Service
	snapshots *memSnapshots
	adviceLog *fakeAdviceLog
	harvest   *fakeHarvest
	client    *fakeWeatherClient
	publisher *fakePublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	f := &fixture{
		snapshots: newMemSnapshots(),
		adviceLog: &fakeAdviceLog{},
		harvest:   &fakeHarvest{},
		client:    &fakeWeatherClient{samples: forecastSamples(), city: "Larache"},
		publisher: &fakePublisher{},
	}
	f.svc = NewService(Deps{
		Repos: &repository.Repository{
			Snapshots: f.snapshots,
			AdviceLog: f.adviceLog,
			Harvest:   f.harvest,
		},
		Catalog:   cat,
		Weather:   f.client,
		Publisher: f.publisher,
		Log:       logger.Nop(),
		Config:    Config{Irrigation: advisory.DefaultConfig(), Farm: Farm{Lang: "en"}},
	})
	return f
}

// forecastSamples is two days of 3h steps: warm and dry today, wet tomorrow.
func forecastSamples() []weather.Sample {
	start := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	out := make([]weather.Sample, 0, 16)
	for i := 0; i < 16; i++ {
		s := weather.Sample{At: start.Add(time.Duration(i) * 3 * time.Hour), TempC: 31, WindKmh: 14.4, HumidityPct: 40, PopPct: 10}
		if i >= 8 {
			s.PopPct = 60
		}
		out = append(out, s)
	}
	return out
}
