package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"agrimoga/internal/i18n"
)

func newTestClient(t *testing.T, base, fallback string, retries int) *Client {
	t.Helper()
	c := NewClient(Config{
		APIKey:         "k",
		BaseURL:        base,
		FallbackGeoURL: fallback,
		Timeout:        2 * time.Second,
		Retries:        retries,
	})
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return c
}

func forecastJSON(n int, pop float64) string {
	var b strings.Builder
	b.WriteString(`{"city":{"name":"Kenitra"},"list":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		p := 0.0
		if i >= samplesPerDay {
			p = pop
		}
		fmt.Fprintf(&b, `{"dt":%d,"main":{"temp":%d,"humidity":70},"wind":{"speed":5},"pop":%v}`, 1700000000+i*10800, 20+i%3, p)
	}
	b.WriteString("]}")
	return b.String()
}

func TestForecast_ParsesSamples(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/forecast" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("appid") != "k" || r.URL.Query().Get("units") != "metric" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(forecastJSON(16, 0.5)))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 0)
	samples, city, err := c.Forecast(context.Background(), 34.26, -6.58)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if city != "Kenitra" || len(samples) != 16 {
		t.Fatalf("city = %q samples = %d", city, len(samples))
	}
	if samples[0].WindKmh != 18 {
		t.Fatalf("wind = %v, want 18 km/h", samples[0].WindKmh)
	}
	if samples[8].PopPct != 50 {
		t.Fatalf("pop = %v, want 50", samples[8].PopPct)
	}

	s := Summarize(samples)
	if !s.RainyTomorrow {
		t.Fatalf("expected rainy tomorrow")
	}
}

func TestForecast_NoAPIKey(t *testing.T) {
	c := NewClient(Config{})
	_, _, err := c.Forecast(context.Background(), 0, 0)
	if KindOf(err) != KindNoAPIKey {
		t.Fatalf("kind = %q, want no_api_key", KindOf(err))
	}
	if got := Warning(err, i18n.English); got == "" || got == i18n.KeyWarnNoAPIKey {
		t.Fatalf("warning = %q", got)
	}
}

func TestForecast_StatusErrorNotRetriedOn4xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 3)
	_, _, err := c.Forecast(context.Background(), 1, 2)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindStatus || fe.StatusCode != 401 {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(fe.Body, "Invalid API key") {
		t.Fatalf("body excerpt = %q", fe.Body)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestForecast_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(forecastJSON(4, 0)))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 2)
	samples, _, err := c.Forecast(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(samples) != 4 || atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("samples = %d calls = %d", len(samples), calls)
	}
}

func TestForecast_EmptyAndDecodeErrors(t *testing.T) {
	bodies := map[string]Kind{
		``:            KindEmptyPayload,
		`{"list":[]}`: KindEmptyPayload,
		`{"list":`:    KindDecode,
	}
	for body, want := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		c := newTestClient(t, srv.URL, srv.URL, 0)
		_, _, err := c.Forecast(context.Background(), 1, 2)
		srv.Close()
		if KindOf(err) != want {
			t.Fatalf("body %q: kind = %q, want %q", body, KindOf(err), want)
		}
	}
}

func TestForecast_BreakerOpensAfterFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 0)
	for i := 0; i < breakerFails; i++ {
		if _, _, err := c.Forecast(context.Background(), 1, 2); KindOf(err) != KindStatus {
			t.Fatalf("call %d: kind = %q", i, KindOf(err))
		}
	}
	_, _, err := c.Forecast(context.Background(), 1, 2)
	if KindOf(err) != KindNetwork {
		t.Fatalf("open breaker kind = %q, want network", KindOf(err))
	}
	if got := atomic.LoadInt32(&calls); got != breakerFails {
		t.Fatalf("calls = %d, want %d", got, breakerFails)
	}
}

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "nowhere" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"name":"Kenitra","local_names":{"ar":"القنيطرة"},"lat":34.26,"lon":-6.58}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 0)
	p, err := c.Geocode(context.Background(), "Kenitra", i18n.Arabic)
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if p.Name != "القنيطرة" || p.Lat != 34.26 {
		t.Fatalf("place = %+v", p)
	}
	if _, err := c.Geocode(context.Background(), "nowhere", i18n.Arabic); !errors.Is(err, ErrPlaceNotFound) {
		t.Fatalf("err = %v, want ErrPlaceNotFound", err)
	}
}

func TestReverseGeocode_FallsBack(t *testing.T) {
	owm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer owm.Close()
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing user agent")
		}
		if r.URL.Query().Get("accept-language") != "fr" {
			t.Errorf("accept-language = %q", r.URL.Query().Get("accept-language"))
		}
		_, _ = w.Write([]byte(`{"display_name":"Somewhere, Maroc","address":{"town":"Larache"}}`))
	}))
	defer nominatim.Close()

	c := newTestClient(t, owm.URL, nominatim.URL, 0)
	if got := c.ReverseGeocode(context.Background(), 35.19, -6.15, i18n.French); got != "Larache" {
		t.Fatalf("label = %q, want Larache", got)
	}
}

func TestReverseGeocode_PrefersLocalName(t *testing.T) {
	owm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Larache","local_names":{"ar":"العرائش"}}]`))
	}))
	defer owm.Close()

	c := newTestClient(t, owm.URL, "http://127.0.0.1:1", 0)
	if got := c.ReverseGeocode(context.Background(), 35.19, -6.15, i18n.Arabic); got != "العرائش" {
		t.Fatalf("label = %q", got)
	}
}

func TestReverseGeocode_EmptyWhenBothFail(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer down.Close()

	c := newTestClient(t, down.URL, down.URL, 0)
	if got := c.ReverseGeocode(context.Background(), 1, 2, i18n.English); got != "" {
		t.Fatalf("label = %q, want empty", got)
	}
}
