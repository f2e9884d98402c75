package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection. A nil *Collector is
// valid and records nothing.
type Collector struct {
	// API
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec

	// Advisors
	AdvisoriesTotal  *prometheus.CounterVec
	IrrigationLiters prometheus.Histogram

	// Weather provider
	WeatherFetchTotal    *prometheus.CounterVec
	WeatherFetchDuration prometheus.Histogram

	// Database
	DBQueryDuration *prometheus.HistogramVec
	DBErrorsTotal   *prometheus.CounterVec

	// Outbound
	PublishTotal    *prometheus.CounterVec
	RiskSubscribers prometheus.Gauge
}

// NewCollector registers the collectors on reg (prometheus.DefaultRegisterer
// when nil).
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		APIRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by endpoint, method, and status",
			},
			[]string{"endpoint", "method", "status"},
		),

		APIRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"endpoint"},
		),

		AdvisoriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "advisories_total",
				Help:      "Advisories computed by advisor and outcome (decision kind or risk tier)",
			},
			[]string{"advisor", "outcome"},
		),

		IrrigationLiters: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "irrigation_liters",
				Help:      "Recommended daily irrigation volume in liters",
				Buckets:   []float64{0, 50, 100, 250, 500, 1000, 1500, 3000, 6000},
			},
		),

		WeatherFetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_fetch_total",
				Help:      "Weather provider calls by operation and result kind",
			},
			[]string{"op", "result"},
		),

		WeatherFetchDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "weather_fetch_duration_seconds",
				Help:      "Duration of weather provider calls in seconds",
				Buckets:   []float64{0.05, 0.1, 0.2, 0.5, 1, 2, 5, 12},
			},
		),

		DBQueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_query_duration_seconds",
				Help:      "Database query duration in seconds by query type",
				Buckets:   []float64{0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5},
			},
			[]string{"query_type"},
		),

		DBErrorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_errors_total",
				Help:      "Total number of swallowed persistence errors by operation",
			},
			[]string{"error_type"},
		),

		PublishTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mqtt_publish_total",
				Help:      "Recorded decisions published to the field broker by result",
			},
			[]string{"result"},
		),

		RiskSubscribers: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "risk_subscribers",
				Help:      "Number of connected risk badge subscribers",
			},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(histogram prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: histogram,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordAPIRequest increments the request counter and observes its duration.
func (c *Collector) RecordAPIRequest(endpoint, method, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.APIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	c.APIRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// RecordAdvisory counts one advisor outcome.
func (c *Collector) RecordAdvisory(advisor, outcome string) {
	if c == nil {
		return
	}
	c.AdvisoriesTotal.WithLabelValues(advisor, outcome).Inc()
}

// RecordIrrigation counts the decision and observes its volume.
func (c *Collector) RecordIrrigation(kind string, liters int) {
	if c == nil {
		return
	}
	c.RecordAdvisory("irrigation", kind)
	c.IrrigationLiters.Observe(float64(liters))
}

// RecordWeatherFetch counts a provider call; result is "ok" or a failure kind.
func (c *Collector) RecordWeatherFetch(op, result string, d time.Duration) {
	if c == nil {
		return
	}
	c.WeatherFetchTotal.WithLabelValues(op, result).Inc()
	c.WeatherFetchDuration.Observe(d.Seconds())
}

// ObserveDBQuery records one query's duration.
func (c *Collector) ObserveDBQuery(queryType string, d time.Duration) {
	if c == nil {
		return
	}
	c.DBQueryDuration.WithLabelValues(queryType).Observe(d.Seconds())
}

// RecordDBError increments database error counter
func (c *Collector) RecordDBError(errorType string) {
	if c == nil {
		return
	}
	c.DBErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordPublish counts an MQTT publish attempt.
func (c *Collector) RecordPublish(result string) {
	if c == nil {
		return
	}
	c.PublishTotal.WithLabelValues(result).Inc()
}

// SetRiskSubscribers sets the current websocket subscriber count.
func (c *Collector) SetRiskSubscribers(n int) {
	if c == nil {
		return
	}
	c.RiskSubscribers.Set(float64(n))
}
