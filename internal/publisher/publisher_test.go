package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"agrimoga/internal/logger"
	"agrimoga/internal/models"
)

type fakeToken struct {
	err      error
	complete bool
	waited   time.Duration
}

func (t *fakeToken) Wait() bool { return t.complete }
func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	t.waited = d
	return t.complete
}
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

// fakeClient overrides only what MQTT uses; the embedded interface panics on
// anything else.
type fakeClient struct {
	mqtt.Client
	token        *fakeToken
	topic        string
	payload      []byte
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topic = topic
	c.payload = payload.([]byte)
	return c.token
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func TestNew_NoBrokerIsNop(t *testing.T) {
	p, err := New(context.Background(), Config{}, logger.Nop(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Fatalf("publisher = %T, want Nop", p)
	}
	if err := p.PublishDecision(context.Background(), models.AdvisoryLogEntry{}); err != nil {
		t.Fatalf("nop publish: %v", err)
	}
}

func TestMQTT_PublishDecision(t *testing.T) {
	c := &fakeClient{token: &fakeToken{complete: true}}
	p := NewMQTT(c, "farm/irrigation/", 1, logger.Nop(), nil)

	e := models.AdvisoryLogEntry{ID: "e1", CropKey: "avocado", Quantity: 720, Decision: "normal"}
	if err := p.PublishDecision(context.Background(), e); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if c.topic != "farm/irrigation/avocado" {
		t.Fatalf("topic = %q", c.topic)
	}
	var got models.AdvisoryLogEntry
	if err := json.Unmarshal(c.payload, &got); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if got.ID != "e1" || got.Quantity != 720 {
		t.Fatalf("payload = %+v", got)
	}

	p.Close()
	if !c.disconnected {
		t.Fatalf("expected disconnect")
	}
}

func TestMQTT_PublishErrors(t *testing.T) {
	brokerErr := errors.New("not connected")
	c := &fakeClient{token: &fakeToken{complete: true, err: brokerErr}}
	p := NewMQTT(c, "t", 0, logger.Nop(), nil)
	if err := p.PublishDecision(context.Background(), models.AdvisoryLogEntry{CropKey: "strawberry"}); !errors.Is(err, brokerErr) {
		t.Fatalf("err = %v, want broker error", err)
	}

	c.token = &fakeToken{complete: false}
	if err := p.PublishDecision(context.Background(), models.AdvisoryLogEntry{CropKey: "strawberry"}); !errors.Is(err, errPublishTimeout) {
		t.Fatalf("err = %v, want timeout", err)
	}
}

func TestMQTT_PublishWaitIsBounded(t *testing.T) {
	c := &fakeClient{token: &fakeToken{complete: true}}
	p := NewMQTT(c, "farm/irrigation", 1, logger.Nop(), nil)
	e := models.AdvisoryLogEntry{ID: "e1", CropKey: "avocado"}

	if err := p.PublishDecision(context.Background(), e); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if c.token.waited != publishTimeout {
		t.Fatalf("waited = %v, want %v", c.token.waited, publishTimeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := p.PublishDecision(ctx, e); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if c.token.waited <= 0 || c.token.waited > 200*time.Millisecond {
		t.Fatalf("waited = %v, want within the 200ms request deadline", c.token.waited)
	}
}
