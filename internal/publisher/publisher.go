// Package publisher forwards recorded irrigation decisions to field
// controllers over MQTT. A publish waits for the broker ack, bounded by
// publishTimeout and the caller's deadline; failures are never retried.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"agrimoga/internal/logger"
	"agrimoga/internal/metrics"
	"agrimoga/internal/models"
)

const (
	publishTimeout = 5 * time.Second
	connectRetries = 5
	connectBudget  = 10 * time.Second
)

var errPublishTimeout = errors.New("mqtt publish timed out")

// Publisher sends a recorded decision somewhere outside the process.
type Publisher interface {
	PublishDecision(ctx context.Context, e models.AdvisoryLogEntry) error
	Close()
}

// Config selects the broker. An empty Broker disables publishing.
type Config struct {
	Broker   string `mapstructure:"broker"` // tcp://host:1883
	Topic    string `mapstructure:"topic"`  // prefix, the crop key is appended
	ClientID string `mapstructure:"client_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	QoS      byte   `mapstructure:"qos"`
}

// Nop drops every decision.
type Nop struct{}

func (Nop) PublishDecision(context.Context, models.AdvisoryLogEntry) error { return nil }
func (Nop) Close()                                                         {}

// MQTT publishes decisions as JSON on <topic>/<crop>.
type MQTT struct {
	client  mqtt.Client
	topic   string
	qos     byte
	log     *logger.Logger
	metrics *metrics.Collector
}

// New connects to the broker with exponential backoff, or returns Nop when no
// broker is configured.
func New(ctx context.Context, cfg Config, log *logger.Logger, m *metrics.Collector) (Publisher, error) {
	if cfg.Broker == "" {
		return Nop{}, nil
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "agrimoga"
	}
	if cfg.Topic == "" {
		cfg.Topic = "agrimoga/irrigation"
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = connectBudget

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			log.Warnw("mqtt_connect_failed", "broker", cfg.Broker, "err", token.Error())
			return token.Error()
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, connectRetries-1), ctx))
	if err != nil {
		return nil, fmt.Errorf("could not establish MQTT connection after retries: %w", err)
	}

	log.Infow("mqtt_connected", "broker", cfg.Broker, "topic", cfg.Topic)
	return NewMQTT(client, cfg.Topic, cfg.QoS, log, m), nil
}

// NewMQTT wraps an already connected client.
func NewMQTT(client mqtt.Client, topic string, qos byte, log *logger.Logger, m *metrics.Collector) *MQTT {
	return &MQTT{client: client, topic: strings.TrimRight(topic, "/"), qos: qos, log: log, metrics: m}
}

// PublishDecision publishes e and blocks until the ack, at most publishTimeout
// or until ctx's deadline, whichever is sooner.
func (p *MQTT) PublishDecision(ctx context.Context, e models.AdvisoryLogEntry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	token := p.client.Publish(p.topic+"/"+e.CropKey, p.qos, false, payload)

	wait := publishTimeout
	if dl, ok := ctx.Deadline(); ok && time.Until(dl) < wait {
		wait = time.Until(dl)
	}
	switch {
	case !token.WaitTimeout(wait):
		err = errPublishTimeout
	case token.Error() != nil:
		err = token.Error()
	}
	if err != nil {
		p.metrics.RecordPublish("error")
		p.log.Warnw("mqtt_publish_failed", "topic", p.topic, "entry_id", e.ID, "err", err)
		return err
	}
	p.metrics.RecordPublish("ok")
	return nil
}

// Close disconnects, allowing a short grace period for in-flight messages.
func (p *MQTT) Close() {
	p.client.Disconnect(250)
}
