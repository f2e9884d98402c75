// Package weather fetches forecasts and place names from OpenWeatherMap, with
// Nominatim as the fallback reverse geocoder.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"agrimoga/internal/i18n"
)

const (
	DefaultBaseURL        = "https://api.openweathermap.org"
	DefaultFallbackGeoURL = "https://nominatim.openstreetmap.org"
	DefaultTimeout        = 12 * time.Second

	userAgent    = "agrimoga/1.0"
	bodyExcerpt  = 256
	msToKmh      = 3.6
	breakerFails = 3
)

// Config configures a Client. Zero values take the defaults above.
type Config struct {
	APIKey         string
	BaseURL        string
	FallbackGeoURL string
	Timeout        time.Duration
	Retries        int
	BreakerOpen    time.Duration
}

// Place is a geocoded location.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Client talks to the providers. Every call is bounded by the configured
// timeout and the caller's context.
type Client struct {
	apiKey      string
	baseURL     string
	fallbackURL string
	timeout     time.Duration
	retries     int
	http        *http.Client
	breaker     *gobreaker.CircuitBreaker
	newBackOff  func() backoff.BackOff
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FallbackGeoURL == "" {
		cfg.FallbackGeoURL = DefaultFallbackGeoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.BreakerOpen <= 0 {
		cfg.BreakerOpen = 30 * time.Second
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		fallbackURL: strings.TrimRight(cfg.FallbackGeoURL, "/"),
		timeout:     cfg.Timeout,
		retries:     cfg.Retries,
		http:        &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openweathermap",
			Timeout: cfg.BreakerOpen,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= breakerFails
			},
			// only transport and server faults count against the provider
			IsSuccessful: func(err error) bool {
				var fe *FetchError
				return err == nil || (errors.As(err, &fe) && !fe.retryable())
			},
		}),
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = 300 * time.Millisecond
			bo.MaxElapsedTime = cfg.Timeout
			return bo
		},
	}
}

// HasAPIKey reports whether forecast and direct geocoding are available.
func (c *Client) HasAPIKey() bool { return c.apiKey != "" }

type owmForecast struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"` // m/s
		} `json:"wind"`
		Pop float64 `json:"pop"` // 0..1
	} `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

// Forecast returns the 3h samples for the coordinates, oldest first.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]Sample, string, error) {
	const op = "forecast"
	if !c.HasAPIKey() {
		return nil, "", &FetchError{Op: op, Kind: KindNoAPIKey}
	}
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	var out owmForecast
	if err := c.getProtected(ctx, op, c.baseURL+"/data/2.5/forecast?"+q.Encode(), &out); err != nil {
		return nil, "", err
	}
	if len(out.List) == 0 {
		return nil, "", &FetchError{Op: op, Kind: KindEmptyPayload}
	}
	samples := make([]Sample, 0, len(out.List))
	for _, it := range out.List {
		samples = append(samples, Sample{
			At:          time.Unix(it.Dt, 0).UTC(),
			TempC:       it.Main.Temp,
			WindKmh:     it.Wind.Speed * msToKmh,
			HumidityPct: it.Main.Humidity,
			PopPct:      it.Pop * 100,
		})
	}
	return samples, out.City.Name, nil
}

type owmPlace struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
}

func (p owmPlace) label(l i18n.Locale) string {
	if s := p.LocalNames[string(l)]; s != "" {
		return s
	}
	return p.Name
}

// Geocode resolves a place name to coordinates.
func (c *Client) Geocode(ctx context.Context, name string, l i18n.Locale) (Place, error) {
	const op = "geocode"
	if !c.HasAPIKey() {
		return Place{}, &FetchError{Op: op, Kind: KindNoAPIKey}
	}
	q := url.Values{}
	q.Set("q", name)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var out []owmPlace
	if err := c.getProtected(ctx, op, c.baseURL+"/geo/1.0/direct?"+q.Encode(), &out); err != nil {
		return Place{}, err
	}
	if len(out) == 0 {
		return Place{}, ErrPlaceNotFound
	}
	return Place{Name: out[0].label(l), Lat: out[0].Lat, Lon: out[0].Lon}, nil
}

type nominatimReverse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

func (n nominatimReverse) label() string {
	for _, s := range []string{n.Address.City, n.Address.Town, n.Address.Village, n.Address.County} {
		if s != "" {
			return s
		}
	}
	return n.DisplayName
}

// ReverseGeocode names the coordinates. It prefers the provider's localized
// name, then Nominatim, and returns "" when both fail. It never errors.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64, l i18n.Locale) string {
	if c.HasAPIKey() {
		q := url.Values{}
		q.Set("lat", formatCoord(lat))
		q.Set("lon", formatCoord(lon))
		q.Set("limit", "1")
		q.Set("appid", c.apiKey)
		var out []owmPlace
		if err := c.getProtected(ctx, "reverse", c.baseURL+"/geo/1.0/reverse?"+q.Encode(), &out); err == nil && len(out) > 0 {
			if s := out[0].label(l); s != "" {
				return s
			}
		}
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))
	q.Set("accept-language", string(l))
	var out nominatimReverse
	if err := c.get(ctx, "reverse", c.fallbackURL+"/reverse?"+q.Encode(), &out); err != nil {
		return ""
	}
	return out.label()
}

// getProtected runs get through the breaker with bounded retries.
func (c *Client) getProtected(ctx context.Context, op, u string, dst any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.retries)), ctx)
		return nil, backoff.Retry(func() error {
			err := c.get(ctx, op, u, dst)
			var fe *FetchError
			if err != nil && errors.As(err, &fe) && !fe.retryable() {
				return backoff.Permanent(err)
			}
			return err
		}, bo)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &FetchError{Op: op, Kind: KindNetwork, Err: err}
	}
	return err
}

func (c *Client) get(ctx context.Context, op, u string, dst any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{Op: op, Kind: KindNetwork, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerpt))
		return &FetchError{Op: op, Kind: KindStatus, StatusCode: resp.StatusCode, Body: string(b)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Op: op, Kind: KindNetwork, Err: err}
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return &FetchError{Op: op, Kind: KindEmptyPayload}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &FetchError{Op: op, Kind: KindDecode, Err: fmt.Errorf("decode %s: %w", op, err)}
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
